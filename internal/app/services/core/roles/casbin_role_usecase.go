package roles

import (
	_ "embed"
	"orca-service/internal/app/contracts"
	"orca-service/internal/app/models"
	"orca-service/internal/pkg/constvars"
	"orca-service/internal/pkg/exceptions"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

//go:embed rbac_model.conf
var rbacModel string

// Viewers read every page; editors inherit that and may submit forms.
var rolePolicies = [][]string{
	{constvars.OrcaRoleViewer, constvars.MethodGet, "/*"},
	{constvars.OrcaRoleViewer, constvars.MethodHead, "/*"},
	{constvars.OrcaRoleEditor, constvars.MethodPost, "/*"},
}

type CasbinRoleUsecase struct {
	enforcer     *casbin.Enforcer
	editorGroups map[string]struct{}
	Log          *zap.Logger
}

func NewCasbinRoleUsecase(editorGroups []string, logger *zap.Logger) (contracts.AuthorizationService, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, exceptions.ErrAuthorizationEngine(err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, exceptions.ErrAuthorizationEngine(err)
	}
	if _, err := enforcer.AddPolicies(rolePolicies); err != nil {
		return nil, exceptions.ErrAuthorizationEngine(err)
	}
	if _, err := enforcer.AddGroupingPolicy(constvars.OrcaRoleEditor, constvars.OrcaRoleViewer); err != nil {
		return nil, exceptions.ErrAuthorizationEngine(err)
	}

	groups := make(map[string]struct{}, len(editorGroups))
	for _, group := range editorGroups {
		groups[group] = struct{}{}
	}

	return &CasbinRoleUsecase{
		enforcer:     enforcer,
		editorGroups: groups,
		Log:          logger,
	}, nil
}

// RoleFor maps the identity's groups to a role. Without configured editor
// groups every identity edits.
func (u *CasbinRoleUsecase) RoleFor(identity *models.Identity) string {
	if identity == nil {
		return ""
	}
	if len(u.editorGroups) == 0 || identity.DevBypass {
		return constvars.OrcaRoleEditor
	}
	for _, group := range identity.Groups {
		if _, ok := u.editorGroups[group]; ok {
			return constvars.OrcaRoleEditor
		}
	}
	return constvars.OrcaRoleViewer
}

func (u *CasbinRoleUsecase) Authorize(role, method, path string) (bool, error) {
	if role == "" {
		return false, nil
	}
	allowed, err := u.enforcer.Enforce(role, method, path)
	if err != nil {
		u.Log.Error("CasbinRoleUsecase.Authorize error enforcing policy",
			zap.String(constvars.LoggingIdentityRoleKey, role),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return false, exceptions.ErrAuthorizationEngine(err)
	}
	return allowed, nil
}
