package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type permission struct {
	Name     string
	Resource string
}

var moduleOrder = []string{"user", "org", "hr", "tms"}

func moduleKey(p permission) string {
	return ModuleOf(p.Name, moduleOrder, "other")
}

func TestGroupByPreservesFirstSeenOrder(t *testing.T) {
	items := []permission{
		{Name: "tms_course_create", Resource: "course"},
		{Name: "hr_employee_view", Resource: "employee"},
		{Name: "tms_course_delete", Resource: "course"},
	}

	g := GroupBy(items, func(p permission) string { return p.Resource })

	assert.Equal(t, []string{"course", "employee"}, g.Keys)
	assert.Len(t, g.Groups["course"], 2)
	assert.Equal(t, "tms_course_create", g.Groups["course"][0].Name)
}

func TestGroupByPriorityModuleOrder(t *testing.T) {
	items := []permission{
		{Name: "hr_employee_view", Resource: "employee"},
		{Name: "user_login", Resource: "auth"},
		{Name: "tms_course_create", Resource: "course"},
	}

	g := GroupByPriority(items, moduleKey, moduleOrder, "other")

	// org has no members and is omitted; populated modules keep the fixed order.
	assert.Equal(t, []string{"user", "hr", "tms"}, g.Keys)
	require.Len(t, g.Groups["user"], 1)
	assert.Equal(t, "user_login", g.Groups["user"][0].Name)
	assert.Equal(t, "hr_employee_view", g.Groups["hr"][0].Name)
	assert.Equal(t, "tms_course_create", g.Groups["tms"][0].Name)
}

func TestGroupByPriorityBucketsUnknownLast(t *testing.T) {
	items := []permission{
		{Name: "billing_invoice_view", Resource: "invoice"},
		{Name: "hr_employee_view", Resource: "employee"},
		{Name: "misc", Resource: "misc"},
	}

	g := GroupByPriority(items, moduleKey, moduleOrder, "other")

	assert.Equal(t, []string{"hr", "other"}, g.Keys)
	assert.Len(t, g.Groups["other"], 2)
}

func TestGroupByPriorityOtherListedInOrderAppearsOnce(t *testing.T) {
	items := []permission{
		{Name: "hr_employee_view", Resource: "employee"},
		{Name: "billing_invoice_view", Resource: "invoice"},
	}

	g := GroupByPriority(items, moduleKey, []string{"user", "org", "hr", "tms", "other"}, "other")

	assert.Equal(t, []string{"hr", "other"}, g.Keys)
	assert.Len(t, g.Groups["other"], 1)
}

func TestGroupingIsDeterministic(t *testing.T) {
	items := []permission{
		{Name: "tms_course_create", Resource: "course"},
		{Name: "user_login", Resource: "auth"},
		{Name: "hr_employee_view", Resource: "employee"},
		{Name: "hr_contract_view", Resource: "contract"},
		{Name: "org_unit_view", Resource: "unit"},
	}

	first := GroupByPriority(items, moduleKey, moduleOrder, "other")
	second := GroupByPriority(items, moduleKey, moduleOrder, "other")

	assert.Equal(t, first.Keys, second.Keys)
	for _, key := range first.Keys {
		assert.Equal(t, first.Groups[key], second.Groups[key])
	}
}

func TestSortWithinIsStableWithSecondaryField(t *testing.T) {
	items := []permission{
		{Name: "hr_b", Resource: "employee"},
		{Name: "hr_a", Resource: "employee"},
		{Name: "hr_c", Resource: "contract"},
	}

	g := GroupBy(items, moduleKey)
	g.SortWithin(func(a, b permission) bool {
		if a.Resource != b.Resource {
			return a.Resource < b.Resource
		}
		return a.Name < b.Name
	})

	hr := g.Groups["hr"]
	require.Len(t, hr, 3)
	assert.Equal(t, "hr_c", hr[0].Name)
	assert.Equal(t, "hr_a", hr[1].Name)
	assert.Equal(t, "hr_b", hr[2].Name)
}

func TestModuleOf(t *testing.T) {
	assert.Equal(t, "hr", ModuleOf("hr_employee_view", moduleOrder, "other"))
	assert.Equal(t, "other", ModuleOf("billing_invoice_view", moduleOrder, "other"))
	assert.Equal(t, "other", ModuleOf("login", moduleOrder, "other"))
}
