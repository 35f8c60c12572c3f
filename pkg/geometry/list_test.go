package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

func TestList_HitClosest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -3), 0.5, material.NewLambertian(core.NewVec3(1, 0, 0)))
	far := NewSphere(core.NewVec3(0, 0, -10), 2, material.NewLambertian(core.NewVec3(0, 1, 0)))
	list := NewList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != near.Material {
		t.Error("Expected closest sphere's material")
	}
	if math.Abs(hit.T-2.5) > 1e-9 {
		t.Errorf("Expected t=2.5, got %f", hit.T)
	}

	if _, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss")
	}
}

func TestList_EmptyList(t *testing.T) {
	list := NewList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected empty list to miss")
	}
	if list.Emits() {
		t.Error("Expected empty list not to emit")
	}
	if pdf := list.Pdf(ray); pdf != 0 {
		t.Errorf("Expected zero pdf, got %f", pdf)
	}
}

func TestList_Emitters(t *testing.T) {
	light := NewSphere(core.NewVec3(0, 5, 0), 1, material.NewEmissive(core.NewVec3(4, 4, 4)))
	ball := NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	list := NewList(ball, light)

	if !list.Emits() {
		t.Error("Expected list with a light to emit")
	}

	lights := list.Emitters()
	if lights.Len() != 1 || lights.Objects[0] != light {
		t.Errorf("Expected only the light in emitters, got %d objects", lights.Len())
	}
}

func TestList_PdfAveragesMembers(t *testing.T) {
	a := NewSphere(core.NewVec3(0, 0, -5), 1, material.NewEmissive(core.NewVec3(1, 1, 1)))
	b := NewSphere(core.NewVec3(0, 0, 5), 1, material.NewEmissive(core.NewVec3(1, 1, 1)))
	list := NewList(a, b)

	origin := core.NewVec3(0, 0, 0)
	ray := core.NewRay(origin, core.NewVec3(0, 0, -1))

	expected := a.Pdf(ray) / 2
	if got := list.Pdf(ray); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected pdf %f, got %f", expected, got)
	}

	random := rand.New(rand.NewSource(42))
	hitsA, hitsB := 0, 0
	for i := 0; i < 2000; i++ {
		r := list.RandomRay(origin, random)
		if r.Direction.Z < 0 {
			hitsA++
		} else {
			hitsB++
		}
		if list.Pdf(r) <= 0 {
			t.Fatalf("Sampled direction %v has zero density", r.Direction)
		}
	}
	if hitsA < 800 || hitsB < 800 {
		t.Errorf("Expected members to be chosen uniformly, got %d/%d", hitsA, hitsB)
	}
}
