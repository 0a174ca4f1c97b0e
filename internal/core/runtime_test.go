package core

import "testing"

func TestRuntimeConfigSeeded(t *testing.T) {
	rc := RuntimeConfig{Seed: 7, TickRate: 30}.Seeded()
	if rc.Seed != 7 || rc.TickRate != 30 {
		t.Errorf("Seeded() = %+v, expected seed 7 and rate 30 kept", rc)
	}

	rc = RuntimeConfig{}.Seeded()
	if rc.Seed == 0 {
		t.Error("Seeded() kept a zero seed")
	}
	if rc.TickRate != DefaultTickRate {
		t.Errorf("TickRate = %d, expected %d", rc.TickRate, DefaultTickRate)
	}
}
