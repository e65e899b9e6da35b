package graphql_test

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgraphql "github.com/shashiranjanraj/kusina/app/graphql"
	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/app/repositories"
)

func newSchemaFixture(t *testing.T) (graphql.Schema, *repositories.MemoryMenuRepository, *repositories.MemoryUserRepository) {
	t.Helper()
	menus := repositories.NewMemoryMenuRepository()
	users := repositories.NewMemoryUserRepository()
	schema, err := appgraphql.NewSchema(menus, users)
	require.NoError(t, err)
	return schema, menus, users
}

func TestSchema_MenusOrderable(t *testing.T) {
	ctx := context.Background()
	schema, menus, _ := newSchemaFixture(t)

	seed := []models.MenuItem{
		{Name: "Adobo", Price: 120, Quantity: 10},
		{Name: "Sold Out Soup", Price: 90, Quantity: 0},
		{Name: "Secret Special", Price: 500, Quantity: 5, Disabled: true},
	}
	for i := range seed {
		require.NoError(t, menus.Create(ctx, &seed[i]))
	}

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ menus { name orderable } }`,
		Context:       ctx,
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	items := data["menus"].([]interface{})
	require.Len(t, items, 3)

	orderable := map[string]bool{}
	for _, raw := range items {
		m := raw.(map[string]interface{})
		orderable[m["name"].(string)] = m["orderable"].(bool)
	}
	assert.True(t, orderable["Adobo"])
	assert.False(t, orderable["Sold Out Soup"])
	assert.False(t, orderable["Secret Special"])
}

func TestSchema_MenusExcludeDisabled(t *testing.T) {
	ctx := context.Background()
	schema, menus, _ := newSchemaFixture(t)

	seed := []models.MenuItem{
		{Name: "Adobo", Price: 120, Quantity: 10},
		{Name: "Secret Special", Price: 500, Quantity: 5, Disabled: true},
	}
	for i := range seed {
		require.NoError(t, menus.Create(ctx, &seed[i]))
	}

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ menus(includeDisabled: false) { name } }`,
		Context:       ctx,
	})
	require.Empty(t, result.Errors)

	items := result.Data.(map[string]interface{})["menus"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Adobo", items[0].(map[string]interface{})["name"])
}

func TestSchema_UserTypeHasNoPasswordField(t *testing.T) {
	ctx := context.Background()
	schema, _, users := newSchemaFixture(t)

	u := models.User{FirstName: "Juan", Email: "juan@example.com", Password: "hash", Role: "user"}
	require.NoError(t, users.Create(ctx, &u))

	// Asking for a password field is a query validation error.
	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ users { email password } }`,
		Context:       ctx,
	})
	assert.NotEmpty(t, result.Errors)

	result = graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ users { email role } }`,
		Context:       ctx,
	})
	require.Empty(t, result.Errors)
	items := result.Data.(map[string]interface{})["users"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "juan@example.com", items[0].(map[string]interface{})["email"])
}
