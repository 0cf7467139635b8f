package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_PDFCalculation(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.8, 0.8)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Specular {
			t.Fatal("Lambertian scatter should not be specular")
		}

		direction := scatter.Scattered.Direction
		if direction.Dot(normal) < 0 {
			t.Fatalf("Scattered direction %v below surface", direction)
		}

		expectedPDF := direction.Normalize().Dot(normal) / math.Pi
		if math.Abs(scatter.PDF-expectedPDF) > 1e-10 {
			t.Errorf("PDF mismatch: got %f, expected %f", scatter.PDF, expectedPDF)
		}
		if got := lambertian.ScatteringPDF(ray, hit, scatter.Scattered); math.Abs(got-scatter.PDF) > 1e-10 {
			t.Errorf("ScatteringPDF %f disagrees with sampled PDF %f", got, scatter.PDF)
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Attenuation should equal albedo, got %v", scatter.Attenuation)
		}
	}
}

func TestLambertian_ScatteringPDFBackward(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	backward := core.NewRay(hit.Point, core.NewVec3(0, -1, 0))
	if pdf := lambertian.ScatteringPDF(ray, hit, backward); pdf != 0 {
		t.Errorf("Backward direction should have zero PDF, got %f", pdf)
	}

	up := core.NewRay(hit.Point, core.NewVec3(0, 3, 0))
	if pdf := lambertian.ScatteringPDF(ray, hit, up); math.Abs(pdf-1/math.Pi) > 1e-12 {
		t.Errorf("Normal direction should have PDF 1/π, got %f", pdf)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	odd := core.NewVec3(1, 0, 0)
	even := core.NewVec3(0, 0, 1)
	lambertian := NewTexturedLambertian(NewCheckerColors(odd, even))
	sampler := core.NewSeededSampler(1)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// sin(10x)·sin(10y)·sin(10z) at (0.1,0.1,0.1) is positive: even
	hit := HitRecord{Point: core.NewVec3(0.1, 0.1, 0.1), Normal: core.NewVec3(0, 1, 0), FrontFace: true}
	scatter, _ := lambertian.Scatter(ray, hit, sampler)
	if !scatter.Attenuation.Equals(even) {
		t.Errorf("Expected even color %v, got %v", even, scatter.Attenuation)
	}

	// Flip sign on one axis: odd
	hit.Point = core.NewVec3(-0.1, 0.1, 0.1)
	scatter, _ = lambertian.Scatter(ray, hit, sampler)
	if !scatter.Attenuation.Equals(odd) {
		t.Errorf("Expected odd color %v, got %v", odd, scatter.Attenuation)
	}
}
