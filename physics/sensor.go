package physics

// Sensed lists what a sensor body touched this tick.
type Sensed struct {
	Others []BodyID
	// World is set when a grid cell in the sensor's mask was touched.
	World bool
}

// Touches reports whether id was sensed.
func (s Sensed) Touches(id BodyID) bool {
	for _, o := range s.Others {
		if o == id {
			return true
		}
	}
	return false
}

// DetectBodies reports which of others intersect sensor and whether the
// sensor touches the grid under its mask. The sensor itself is skipped if it
// appears in others.
func DetectBodies(sensor *Body, others []Body, grid Grid) Sensed {
	rect := sensor.WorldRect()
	var sensed Sensed
	for i := range others {
		if others[i].ID == sensor.ID {
			continue
		}
		if others[i].WorldRect().Intersects(rect) {
			sensed.Others = append(sensed.Others, others[i].ID)
		}
	}
	sensed.World = TouchesGrid(rect, grid, sensor.Mask)
	return sensed
}

// DetectStatic is DetectBodies against the static snapshot.
func (s *Space) DetectStatic(sensor *Body, grid Grid) Sensed {
	rect := sensor.WorldRect()
	return Sensed{
		Others: s.Overlapping(rect, sensor.ID),
		World:  TouchesGrid(rect, grid, sensor.Mask),
	}
}
