package systems

import "github.com/1icebest1/shooter/internal/domain"

// MoveIntent - зажатые клавиши движения за кадр.
type MoveIntent struct {
	Left, Right, Up, Down bool
}

func (m MoveIntent) Any() bool {
	return m.Left || m.Right || m.Up || m.Down
}

// MovementResult описывает, что случилось с игроком за кадр.
type MovementResult struct {
	HasMoved bool // была зажата клавиша
	IsWall   bool // шаг откатила стена
}

// MovePlayer применяет зажатые клавиши, откатывает весь шаг при попадании в стену
// и ограничивает игрока картой. Взгляд берётся по последней клавише в порядке
// Left, Right, Up, Down, так что вертикаль побеждает при ничьей.
func MovePlayer(p *domain.Player, intent MoveIntent, w *domain.GameWorld) MovementResult {
	prevX, prevY := p.X, p.Y
	res := MovementResult{HasMoved: intent.Any()}

	if intent.Left {
		p.X -= p.Speed
		p.Direction = domain.DirLeft
	}
	if intent.Right {
		p.X += p.Speed
		p.Direction = domain.DirRight
	}
	if intent.Up {
		p.Y -= p.Speed
		p.Direction = domain.DirUp
	}
	if intent.Down {
		p.Y += p.Speed
		p.Direction = domain.DirDown
	}

	if w.IsBlocking(p.X, p.Y, p.Width, p.Height) {
		p.X, p.Y = prevX, prevY
		res.IsWall = true
	}
	p.X, p.Y = w.ClampBox(p.X, p.Y, p.Width, p.Height)

	p.Moving = res.HasMoved
	return res
}
