package resources

import (
	"github.com/shashiranjanraj/kusina/app/models"
	"github.com/shashiranjanraj/kusina/pkg/resource"
)

// UserResource shapes an account for the wire. The credential is dropped
// here as well as by the model's json tag, so no serialisation path leaks
// it.
type UserResource struct{ resource.Base }

func (r *UserResource) ToArray(v interface{}) resource.Map {
	switch u := v.(type) {
	case models.User:
		return resource.Map{
			"_id":        u.ID.Hex(),
			"firstname":  u.FirstName,
			"lastname":   u.LastName,
			"middlename": u.MiddleName,
			"email":      u.Email,
			"role":       u.Role,
			"created_at": u.CreatedAt,
		}
	case map[string]interface{}:
		delete(u, "password")
		return u
	default:
		return resource.Map{}
	}
}
