package tenantselect

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/integraltech/brainsentry-cli/internal/api"
)

// PromptTenantSelection shows an interactive prompt for the user to pick a
// tenant scope from the ones the backend knows about
func PromptTenantSelection(tenants []api.Tenant) (*api.Tenant, error) {
	if len(tenants) == 0 {
		return nil, fmt.Errorf("no tenants available")
	}

	type tenantOption struct {
		Label  string
		Tenant *api.Tenant
	}

	options := make([]tenantOption, len(tenants))
	for i := range tenants {
		tenant := &tenants[i]
		label := fmt.Sprintf("%s (%s)", tenant.Name, tenant.Slug)
		if !tenant.Active {
			label += " [inactive]"
		}
		options[i] = tenantOption{Label: label, Tenant: tenant}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ .Label | cyan }}",
		Inactive: "  {{ .Label }}",
		Selected: "{{ .Label | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a tenant",
		Items:     options,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tenant selection cancelled: %w", err)
	}

	return options[index].Tenant, nil
}
