package sandbox

// Rule functions update exactly one cell per call. The return value reports
// whether the originating position was consumed (moved or transformed with
// the current parity already stamped); when false the scheduler marks the
// original coordinate visited itself.

func updateSand(s *SandBox, x, y int) bool {
	below := s.Get(x, y+1).Element
	if below == Air || below == Water || below == Fire || below == Oil {
		s.Swap(x, y, x, y+1)
		return true
	}
	if below == Acid {
		// Sink into the acid while it eats the grain.
		if s.dissolveTo(x, y, Air) {
			s.ClearCell(x, y+1)
			return false
		}
		s.Swap(x, y, x, y+1)
		return true
	}
	nx := s.RandomNeighbourX(x)
	neighbour := s.Get(nx, y+1).Element
	if neighbour == Air || neighbour == Water {
		s.Swap(x, y, nx, y+1)
		return true
	}
	if neighbour == Acid {
		if s.dissolveTo(nx, y+1, Air) {
			s.ClearCell(x, y+1)
			return false
		}
		s.Swap(x, y, nx, y+1)
		return true
	}
	return false
}

func updateWater(s *SandBox, x, y int) bool {
	random := s.Random(60)
	checkX := x
	if random == 58 {
		checkX = x - 1
	} else if random == 59 {
		checkX = x + 1
	}
	if moved, ok := touchWater(s, x, y, checkX, y+1, random); ok {
		return moved
	}
	// Water flows sideways while the chain of cells stays water.
	for n := 1; n < 16; n++ {
		if random < 30 {
			if x <= n {
				break
			}
			checkX = x - n
		} else {
			if x+n >= s.width-1 {
				break
			}
			checkX = x + n
		}
		neighbour := s.Get(checkX, y).Element
		if moved, ok := touchWater(s, x, y, checkX, y, random); ok {
			return moved
		}
		if neighbour != Water {
			break
		}
	}
	return false
}

// touchWater applies the shared contact rules of water against the cell at
// (otherX, otherY). The second result reports whether the contact resolved
// the update.
func touchWater(s *SandBox, waterX, waterY, otherX, otherY, random int) (bool, bool) {
	other := s.Get(otherX, otherY).Element
	switch {
	case other == Air || other == Oil:
		s.Swap(waterX, waterY, otherX, otherY)
		return true, true
	case other == Acid:
		// Water neutralizes acid, occasionally sinking through it.
		s.dissolveTo(otherX, otherY, Water)
		if waterY < otherY && random%2 == 0 {
			s.Swap(waterX, waterY, otherX, otherY)
		}
		return false, true
	case other == Lava:
		if s.dissolveTo(otherX, otherY, Rock) {
			s.ClearCell(waterX, waterY)
		}
		return false, true
	case other == Fire:
		s.ClearCell(waterX, waterY)
		s.SetElement(otherX, otherY, Water, false)
		return true, true
	}
	return false, false
}

func updateAcid(s *SandBox, x, y int) bool {
	random := s.Random(60)
	checkX := x
	if random >= 50 && random < 55 {
		checkX = x - 1
	} else if random >= 55 {
		checkX = x + 1
	}
	below := s.Get(checkX, y+1).Element
	if below == Air || below == Fire {
		s.Swap(x, y, checkX, y+1)
		return true
	}
	if below == Water {
		// Contact with water converts the acid itself.
		s.dissolveTo(x, y, Water)
		return false
	}
	if below.DissolvesInAcid() {
		if s.dissolveTo(checkX, y+1, Air) {
			s.ClearCell(x, y)
			return true
		}
		return false
	}
	// Acid flows sideways somewhat more slowly than water.
	for n := 1; n < 8; n++ {
		if random < 30 {
			if x <= n {
				break
			}
			checkX = x - n
		} else {
			if x+n >= s.width-1 {
				break
			}
			checkX = x + n
		}
		neighbour := s.Get(checkX, y).Element
		if neighbour == Air {
			s.Swap(x, y, checkX, y)
			return true
		}
		if neighbour.DissolvesInAcid() {
			if s.dissolveTo(checkX, y, Air) {
				s.ClearCell(x, y)
			}
			return true
		}
		if neighbour != Acid {
			break
		}
	}
	return false
}

func updateOil(s *SandBox, x, y int) bool {
	random := s.Random(500)
	checkX := x
	if random <= 25 {
		checkX = x + 1
	} else if random <= 50 {
		checkX = x - 1
	}
	below := s.Get(checkX, y+1).Element
	if below == Air || below == Acid {
		s.Swap(x, y, checkX, y+1)
		return true
	}
	// Oil flows sideways in air, and through acid only at distance one.
	for n := 1; n < 8; n++ {
		if random < 250 {
			if x <= n {
				break
			}
			checkX = x - n
		} else {
			if x+n >= s.width-1 {
				break
			}
			checkX = x + n
		}
		neighbour := s.Get(checkX, y).Element
		if neighbour == Air || (n == 1 && neighbour == Acid) {
			s.Swap(x, y, checkX, y)
			return true
		}
		if neighbour != Oil {
			break
		}
	}
	return false
}

func updateDrain(s *SandBox, x, y int) bool {
	// Remove any liquid on top, left or right of this cell.
	if s.Get(x, y-1).Element.Form() == FormLiquid {
		s.ClearCell(x, y-1)
		return true
	}
	if s.Get(x-1, y).Element.Form() == FormLiquid {
		s.ClearCell(x-1, y)
		return true
	}
	if s.Get(x+1, y).Element.Form() == FormLiquid {
		s.ClearCell(x+1, y)
		return true
	}
	return false
}

func updateFire(s *SandBox, x, y int) bool {
	random := s.Random(5)
	// Fire burns out over time, leaving smoke.
	if random > 3 && !s.ReduceStrength(x, y) {
		s.SetElement(x, y, Smoke, false)
		return true
	}
	// Flicker.
	cell := s.cellAt(x, y)
	cell.Variant = uint8((int(cell.Variant) + random*10) % 255)
	// Move in a random direction, with a tendency upwards.
	nx, ny := x, y-1
	switch random {
	case 0:
		nx, ny = x, y+1
	case 1:
		nx, ny = x+1, y
	case 2:
		nx, ny = x-1, y
	}
	element := s.Get(nx, ny).Element
	if element == Air {
		s.Swap(x, y, nx, ny)
		return true
	}
	if element.Burns() {
		if element.Form() == FormSolid && random > 3 {
			// Burnt-through solids sometimes leave ash behind.
			s.dissolveTo(nx, ny, Ash)
		} else {
			s.dissolveTo(nx, ny, Fire)
		}
		return false
	}
	return false
}

func updateAsh(s *SandBox, x, y int) bool {
	return updateSand(s, x, y)
}

func updateLava(s *SandBox, x, y int) bool {
	random := s.Random(500)
	// Glow.
	cell := s.cellAt(x, y)
	cell.Variant = uint8((int(cell.Variant) + random) % 255)
	// Cool down once no longer at full heat.
	if random < 250 && cell.Strength < 64 {
		if s.dissolveTo(x, y, Rock) {
			return true
		}
	}
	// Give off sparks.
	if random == 0 && s.Get(x, y-1).Element == Air {
		s.SetElement(x, y-1, Fire, false)
	}
	if moved, ok := touchLava(s, x, y, x, y+1); ok {
		return moved
	}
	nx := s.RandomNeighbourX(x)
	if moved, ok := touchLava(s, x, y, nx, y+1); ok {
		return moved
	}
	if moved, ok := touchLava(s, x, y, nx, y); ok {
		return moved
	}
	return false
}

// touchLava applies the shared contact rules of lava against the cell at
// (otherX, otherY).
func touchLava(s *SandBox, lavaX, lavaY, otherX, otherY int) (bool, bool) {
	element := s.Get(otherX, otherY).Element
	if element == Air || element == Acid || element == Water || element == Fire {
		s.Swap(lavaX, lavaY, otherX, otherY)
		return true, true
	}
	if element.Burns() {
		s.dissolveTo(otherX, otherY, Fire)
		return false, true
	}
	return false, false
}

func updateSmoke(s *SandBox, x, y int) bool {
	random := s.Random(5)
	// Smoke thins out over time and eventually vanishes.
	if random > 1 && !s.ReduceStrength(x, y) {
		s.ClearCell(x, y)
		return true
	}
	// Move in a random direction, with a tendency upwards.
	nx, ny := x, y-1
	switch random {
	case 0:
		nx, ny = x+1, y
	case 1:
		nx, ny = x-1, y
	}
	neighbour := s.Get(nx, ny).Element
	if neighbour == Air {
		s.Swap(x, y, nx, ny)
		return true
	}
	if neighbour == Fire || neighbour.Form() == FormLiquid {
		s.ClearCell(x, y)
		return true
	}
	return false
}

func updateIron(s *SandBox, x, y int) bool {
	rusty := s.Get(x-1, y).Element.CausesRust() ||
		s.Get(x+1, y).Element.CausesRust() ||
		s.Get(x, y-1).Element.CausesRust() ||
		s.Get(x, y+1).Element.CausesRust()
	if rusty {
		// Corrode somewhat randomly.
		if s.Random(5) > 2 && !s.ReduceStrength(x, y) {
			s.SetElement(x, y, Rust, false)
			return true
		}
	}
	return false
}

func updatePlant(s *SandBox, x, y int) bool {
	count := 0
	for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
		if s.Random(10) <= 1 && s.Get(n[0], n[1]).Element.GrowsPlant() {
			s.SetElement(n[0], n[1], Plant, false)
			count++
		}
	}
	return count > 0
}

func updateSource(s *SandBox, x, y int, element Element) bool {
	if s.Get(x, y+1).Element != element {
		s.SetElement(x, y+1, element, false)
		return true
	}
	return false
}

func livingNeighbours(s *SandBox, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.Get(x+dx, y+dy).Element == Life {
				count++
			}
		}
	}
	return count
}

func updateAir(s *SandBox, x, y int) bool {
	if livingNeighbours(s, x, y) == 3 {
		s.SetElement(x, y, Life, false)
		return true
	}
	return false
}

func updateLife(s *SandBox, x, y int) bool {
	count := livingNeighbours(s, x, y)
	if count < 2 || count > 3 {
		s.SetElement(x, y, Air, false)
		return true
	}
	return false
}
