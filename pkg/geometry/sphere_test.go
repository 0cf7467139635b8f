package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 5),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecClose(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NearRootFromOutside(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	center := core.NewVec3(1, -2, 3)
	radius := 0.75
	sphere := NewSphere(center, radius, nil)

	for i := 0; i < 100; i++ {
		// Origin outside the sphere aimed at its center
		offset := core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, random.Float64()-0.5).Normalize()
		distance := radius + 0.5 + random.Float64()*10
		origin := center.Add(offset.Multiply(distance))
		ray := core.NewRay(origin, center.Subtract(origin).Normalize())

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
		if !isHit {
			t.Fatalf("Ray %d aimed at center missed", i)
		}
		if math.Abs(hit.T-(distance-radius)) > 1e-9 {
			t.Errorf("Ray %d: expected t=%f, got %f", i, distance-radius, hit.T)
		}
		if !hit.FrontFace {
			t.Errorf("Ray %d: expected front face", i)
		}
		if !vecClose(hit.Normal, offset, 1e-9) {
			t.Errorf("Ray %d: expected outward normal %v, got %v", i, offset, hit.Normal)
		}
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, -1))

	// Near root at t=2 is excluded, far root at t=4 is found
	hit, isHit := sphere.Hit(ray, 2.5, 10)
	if !isHit || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected far root t=4, got hit=%t", isHit)
	}

	// Both roots outside the interval
	if _, isHit := sphere.Hit(ray, 0.001, 1.5); isHit {
		t.Error("Expected miss when both roots exceed tMax")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"plus x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"plus y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"minus y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"minus x", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"plus z", core.NewVec3(0, 0, 1), 0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected (%f,%f), got (%f,%f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestSphere_CarriesMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	hit, isHit := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 100)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Error("Hit record should carry the sphere's material")
	}
}

func TestSphere_LightSampling(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	cosThetaMax := math.Sqrt(1 - 1.0/25.0)
	expectedPDF := 1 / (2 * math.Pi * (1 - cosThetaMax))

	if pdf := sphere.PDFValue(origin, core.NewVec3(0, 0, -1)); math.Abs(pdf-expectedPDF) > 1e-9 {
		t.Errorf("Expected pdf %f towards center, got %f", expectedPDF, pdf)
	}
	if pdf := sphere.PDFValue(origin, core.NewVec3(0, 0, 1)); pdf != 0 {
		t.Errorf("Expected pdf 0 away from sphere, got %f", pdf)
	}

	for i := 0; i < 200; i++ {
		direction := sphere.Random(origin, sampler)
		if _, isHit := sphere.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !isHit {
			t.Fatalf("Sampled direction %v does not hit the sphere", direction)
		}
	}
}

func TestMovingSphere_CenterAndBox(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), 0, 1, 0.5, nil)

	if center := sphere.CenterAt(0.5); !vecClose(center, core.NewVec3(1, 0, 0), 1e-12) {
		t.Errorf("Expected center (1,0,0) at t=0.5, got %v", center)
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should have a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(2.5, 0.5, 0.5))
	if !vecClose(box.Min, expected.Min, 1e-12) || !vecClose(box.Max, expected.Max, 1e-12) {
		t.Errorf("Expected box %v, got %v", expected, box)
	}
}

func TestMovingSphere_HitUsesRayTime(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 0, 1, 1, nil)
	direction := core.NewVec3(0, 0, -1)

	early := core.NewRayAtTime(core.NewVec3(0, 0, 5), direction, 0)
	if _, isHit := sphere.Hit(early, 0.001, 100); !isHit {
		t.Error("Expected hit at time 0 where the sphere starts")
	}

	late := core.NewRayAtTime(core.NewVec3(0, 0, 5), direction, 1)
	if _, isHit := sphere.Hit(late, 0.001, 100); isHit {
		t.Error("Expected miss at time 1 after the sphere moved away")
	}
}

func TestMovingSphere_StationaryWhenTimesEqual(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(1, 2, 3), core.NewVec3(4, 5, 6), 0.5, 0.5, 1, nil)
	if center := sphere.CenterAt(0.9); !center.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected Center0 when the time span is empty, got %v", center)
	}
}

func TestSphere_NegativeRadiusBoundingBox(t *testing.T) {
	tests := []struct {
		name   string
		object Hittable
	}{
		{"sphere", NewSphere(core.NewVec3(1, 2, 3), -0.5, nil)},
		{"moving sphere", NewMovingSphere(core.NewVec3(1, 2, 3), core.NewVec3(1, 2, 3), 0, 1, -0.5, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, ok := tt.object.BoundingBox(0, 1)
			if !ok {
				t.Fatal("Expected a bounding box")
			}
			if !vecClose(box.Min, core.NewVec3(0.5, 1.5, 2.5), 1e-12) || !vecClose(box.Max, core.NewVec3(1.5, 2.5, 3.5), 1e-12) {
				t.Errorf("Expected box [(0.5,1.5,2.5),(1.5,2.5,3.5)], got [%v,%v]", box.Min, box.Max)
			}
		})
	}
}

func TestSphere_HollowInsideBVH(t *testing.T) {
	outer := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	hollow := NewSphere(core.NewVec3(0, 0, 0), -0.9, nil)
	far := NewSphere(core.NewVec3(10, 0, 0), 1.0, nil)

	bvh, err := NewBVH([]Hittable{outer, hollow, far}, 0, 1, core.NewRandomSampler(rand.New(rand.NewSource(42))))
	if err != nil {
		t.Fatal(err)
	}

	// Starting between the two shells, the first surface ahead is the hollow one
	ray := core.NewRay(core.NewVec3(0, 0, 0.95), core.NewVec3(0, 0, -1))
	hit, isHit := bvh.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected to hit the hollow sphere through the BVH")
	}
	if math.Abs(hit.T-0.05) > 1e-9 {
		t.Errorf("Expected t=0.05, got %f", hit.T)
	}
	if hit.FrontFace || !vecClose(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected inward-facing back face with normal +Z, got front=%t normal=%v", hit.FrontFace, hit.Normal)
	}
}
