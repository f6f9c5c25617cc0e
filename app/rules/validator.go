package rules

import (
	"github.com/DedS3t/monopoly-backend/app/actions"
	"github.com/DedS3t/monopoly-backend/app/models"
	"github.com/DedS3t/monopoly-backend/app/notice"
	uuid "github.com/satori/go.uuid"
)

// Rule is a single legality check. Check returns false when the action
// must be rejected; the violation message is the catalog entry
// "rule.<Name>" rendered against the context.
type Rule struct {
	Name  string
	Check func(c *Context) bool
}

// Registry lists, per action type, the rules run in order before reduction.
// Types without an entry pass through unchecked.
type Registry map[actions.Type][]Rule

type Validator struct {
	Rules   Registry
	Catalog notice.Catalog
	NewID   func() string
}

func NewValidator(catalog notice.Catalog) *Validator {
	return &Validator{
		Rules:   Default(),
		Catalog: catalog,
		NewID:   func() string { return uuid.NewV4().String() },
	}
}

// Validate runs the rules registered for the action type and returns the
// first violation.
func (v *Validator) Validate(c *Context) error {
	for _, rule := range v.Rules[c.Action.Type] {
		if !rule.Check(c) {
			return Violation(rule.Name, notice.Render(v.Catalog, "rule."+rule.Name, c.Scope()))
		}
	}
	return nil
}

// Notice renders the notice declared by decl and attaches it to the
// resolved action. It returns nil when nothing is declared.
func (v *Validator) Notice(decl *actions.Notice, c *Context) *models.NoticeState {
	if decl == nil {
		return nil
	}
	id := decl.ID.Resolve(actions.Source{State: c.State, Config: c.Config})
	meta := make(map[string]interface{}, len(decl.Meta))
	for _, name := range decl.Meta {
		if value, ok := c.field(name); ok {
			meta[name] = value
		}
	}
	n := &models.NoticeState{
		ID:      v.NewID(),
		Type:    decl.Type,
		Message: notice.Render(v.Catalog, id, c.Scope()),
		Meta:    meta,
	}
	c.Action.Notice = n
	return n
}
