package systems

import (
	"math"

	"github.com/1icebest1/shooter/internal/domain"
	"github.com/1icebest1/shooter/pkg/logger"
	"github.com/sirupsen/logrus"
)

// --- ПОДБОР ---

// TryPickup подбирает первый предмет на земле в пределах PickupRadius (от центра
// до центра), который принимает инвентарь. Отвергнутые предметы пропускаются.
// Возвращает обновлённый список на земле и подобранный предмет либо nil.
func TryPickup(p *domain.Player, ground []*domain.Item) ([]*domain.Item, *domain.Item) {
	px, py := p.Bounds().Center()

	for i, it := range ground {
		ix, iy := it.Bounds().Center()
		if math.Hypot(px-ix, py-iy) >= domain.PickupRadius {
			continue
		}
		if !p.Inventory.AddItem(it) {
			continue
		}

		// Предмет теперь в слоте, позиция на земле больше не важна.
		copy(ground[i:], ground[i+1:])
		ground[len(ground)-1] = nil
		ground = ground[:len(ground)-1]

		logger.Log.WithFields(logrus.Fields{
			"component": "inventory_system",
			"item_id":   it.ID,
			"kind":      it.Kind.String(),
			"name":      it.Name(),
		}).Info("Item picked up.")
		return ground, it
	}
	return ground, nil
}

// --- ВЫБРОС ---

// TryDrop выкладывает выбранный слот на землю под игроком.
func TryDrop(p *domain.Player, ground []*domain.Item) ([]*domain.Item, *domain.Item) {
	if p.Inventory.Selected < 0 {
		return ground, nil
	}
	it := p.Inventory.RemoveItem(p.Inventory.Selected)
	if it == nil {
		return ground, nil
	}

	cx, cy := p.Bounds().Center()
	it.X = math.Floor(cx) - float64(it.Width/2)
	it.Y = math.Floor(cy) - float64(it.Height/2)
	ground = append(ground, it)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"item_id":   it.ID,
		"kind":      it.Kind.String(),
		"name":      it.Name(),
	}).Info("Item dropped.")
	return ground, it
}

// --- ПЕРЕЗАРЯДКА ---

// TryReload перезаряжает выбранное оружие, если шаблон это разрешает.
func TryReload(p *domain.Player) bool {
	w := p.Inventory.SelectedWeapon()
	if w == nil {
		return false
	}
	return w.Reload()
}
