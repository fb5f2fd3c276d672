package systems

import (
	"math"
	"math/rand"

	"github.com/1icebest1/shooter/internal/domain"
)

// UpdateSlime выполняет один тик автомата блуждание/погоня.
// targetX/targetY - левый верхний угол игрока.
//
// CHASE (дистанция < DetectionRadius): шаг прямо к игроку, пока дальше
// ChaseStopRadius. WANDER: случайный поворот каждые WanderTurnTicks, шаг каждые
// WanderStepTicks. В обоих режимах шаг в стену откатывается и выбирается новое
// случайное направление. Поиска пути нет.
func UpdateSlime(s *domain.Slime, targetX, targetY float64, w *domain.GameWorld, rng *rand.Rand) {
	s.MoveCounter++
	s.AnimCounter++

	dx := targetX - s.X
	dy := targetY - s.Y
	dist := math.Hypot(dx, dy)

	if dist < domain.DetectionRadius {
		s.IsChasing = true
		if dist > domain.ChaseStopRadius {
			chaseStep(s, dx/dist, dy/dist, w, rng)
		}
	} else {
		s.IsChasing = false
		if s.MoveCounter%domain.WanderTurnTicks == 0 {
			s.Direction = domain.RandomDirection(rng)
		}
		if s.MoveCounter%domain.WanderStepTicks == 0 {
			wanderStep(s, w, rng)
		}
	}

	if s.AnimCounter%domain.SlimeAnimTicks == 0 {
		s.AnimFrame = (s.AnimFrame + 1) % domain.AnimFramesPerDir
	}
}

func chaseStep(s *domain.Slime, nx, ny float64, w *domain.GameWorld, rng *rand.Rand) {
	moveX := nx * s.Speed
	moveY := ny * s.Speed

	if !tryStep(s, moveX, moveY, w, rng) {
		return
	}

	if math.Abs(moveX) > math.Abs(moveY) {
		if moveX > 0 {
			s.Direction = domain.DirRight
		} else {
			s.Direction = domain.DirLeft
		}
	} else {
		if moveY > 0 {
			s.Direction = domain.DirDown
		} else {
			s.Direction = domain.DirUp
		}
	}
}

func wanderStep(s *domain.Slime, w *domain.GameWorld, rng *rand.Rand) {
	ux, uy := s.Direction.Delta()
	tryStep(s, ux*s.Speed, uy*s.Speed, w, rng)
}

// tryStep двигает слизня и откатывает шаг при столкновении, разворачивая его случайно.
// Возвращает true, если шаг удался.
func tryStep(s *domain.Slime, dx, dy float64, w *domain.GameWorld, rng *rand.Rand) bool {
	prevX, prevY := s.X, s.Y
	s.X += dx
	s.Y += dy

	if w.IsBlocking(s.X, s.Y, s.Width, s.Height) {
		s.X, s.Y = prevX, prevY
		s.Direction = domain.RandomDirection(rng)
		return false
	}
	return true
}
