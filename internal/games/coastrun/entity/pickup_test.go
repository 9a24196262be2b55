package entity

import "testing"

func TestPickupCollectOnce(t *testing.T) {
	for _, k := range []PickupKind{PickupHeart, PickupAmmo, PickupMate} {
		p := NewPickup(k, 100)
		if !p.Collect() {
			t.Fatalf("%v: first collect should succeed", k)
		}
		for i := 0; i < 3; i++ {
			if p.Collect() {
				t.Errorf("%v: collect #%d returned true", k, i+2)
			}
		}
		if p.Alive() {
			t.Errorf("%v: collected pickup still alive", k)
		}
	}
}

func TestPickupFloats(t *testing.T) {
	p := NewPickup(PickupHeart, 0)
	y0 := p.AABB().Y
	p.Update(0.25)
	if p.AABB().Y == y0 {
		t.Error("pickup should float")
	}
	if o := p.Offset(); o > pickupFloatHeight || o < -pickupFloatHeight {
		t.Errorf("offset %v out of range", o)
	}
}

func TestProjectileRange(t *testing.T) {
	p := NewProjectile(100, 30, 960, 1920)
	for i := 0; i < 3; i++ {
		p.Update(0.5)
		if !p.Alive() {
			t.Fatalf("projectile expired after %v units", p.Traveled())
		}
	}
	p.Update(0.5)
	if p.Traveled() != 1920 {
		t.Fatalf("traveled %v, want 1920", p.Traveled())
	}
	if p.Alive() {
		t.Error("projectile should expire at max range")
	}
}

func TestProjectileDestroyOnce(t *testing.T) {
	p := NewProjectile(0, 0, -720, 1920)
	if !p.Destroy() || p.Destroy() {
		t.Error("Destroy should succeed exactly once")
	}
	if !p.AABB().Empty() {
		t.Error("destroyed projectile should not collide")
	}
}

func TestParseHazardKind(t *testing.T) {
	for _, name := range []string{"bonfire", "hippie"} {
		k, err := ParseHazardKind(name)
		if err != nil || k.String() != name {
			t.Errorf("ParseHazardKind(%q) = %v, %v", name, k, err)
		}
	}
	if _, err := ParseHazardKind("shark"); err == nil {
		t.Error("unknown hazard should fail")
	}
}
