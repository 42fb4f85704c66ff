package systems

import (
	"github.com/decker502/arcade/pkg/components"
	"github.com/decker502/arcade/pkg/ecs"
	"github.com/decker502/arcade/pkg/utils"
)

// applyDamage 扣血并把血量限制在 [0, MaxHealth]，返回扣血后的血量
func applyDamage(em *ecs.EntityManager, id ecs.EntityID, damage int) int {
	hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return 0
	}
	hp.CurrentHealth = utils.ClampInt(hp.CurrentHealth-damage, 0, hp.MaxHealth)
	return hp.CurrentHealth
}
