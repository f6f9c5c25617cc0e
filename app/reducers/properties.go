package reducers

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/rules"
)

func Properties(props models.Properties, a rules.Resolved) models.Properties {
	switch a.Type {
	case actions.PropertyBuy, actions.AuctionClose:
		if a.Player == "" {
			return props
		}
		return transferOwnership(props, []string{a.Property}, func(models.PropertyState) string {
			return a.Player
		})

	case actions.PropertyImprove:
		return update(props, a.Property, func(p *models.PropertyState) { p.Buildings++ })
	case actions.PropertyUnimprove:
		return update(props, a.Property, func(p *models.PropertyState) { p.Buildings-- })
	case actions.PropertyMortgage:
		return update(props, a.Property, func(p *models.PropertyState) { p.Mortgaged = true })
	case actions.PropertyUnmortgage:
		return update(props, a.Property, func(p *models.PropertyState) { p.Mortgaged = false })

	case actions.TradeAccept:
		return transferOwnership(props, a.Properties, func(p models.PropertyState) string {
			if p.Owner == a.Player {
				return a.Other
			}
			return a.Player
		})

	case actions.PlayerBankrupt:
		next := transferOwnership(props, a.Properties, func(models.PropertyState) string {
			return a.Other
		})
		if a.Other == models.Bank {
			for _, id := range a.Properties {
				p := next.ByID[id]
				p.Mortgaged = false
				next.ByID[id] = p
			}
		}
		return next
	}
	return props
}

func update(props models.Properties, id string, fn func(p *models.PropertyState)) models.Properties {
	p, ok := props.ByID[id]
	if !ok {
		return props
	}
	next := props.Clone()
	fn(&p)
	next.ByID[id] = p
	return next
}

// transferOwnership hands every listed property to owner(p) and then
// rewrites the monopoly flag across each touched group.
func transferOwnership(props models.Properties, ids []string, owner func(models.PropertyState) string) models.Properties {
	if len(ids) == 0 {
		return props
	}
	next := props.Clone()
	groups := map[string]bool{}
	for _, id := range ids {
		p, ok := next.ByID[id]
		if !ok {
			continue
		}
		p.Owner = owner(p)
		next.ByID[id] = p
		groups[p.Group] = true
	}
	for group := range groups {
		recomputeMonopoly(next, group)
	}
	return next
}

func recomputeMonopoly(props models.Properties, group string) {
	owner := ""
	monopoly := true
	for _, id := range props.All {
		p := props.ByID[id]
		if p.Group != group {
			continue
		}
		if owner == "" {
			owner = p.Owner
		}
		if p.Owner != owner || p.Owner == models.Bank {
			monopoly = false
		}
	}
	for _, id := range props.All {
		if p := props.ByID[id]; p.Group == group {
			p.Monopoly = monopoly
			props.ByID[id] = p
		}
	}
}
