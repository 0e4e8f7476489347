package routers

import (
	"proacolhe-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Staff permissions depend on both actor and target, so they are checked
// by the usecase rather than by a route middleware.
func attachStaffRoutes(router chi.Router, staffController *controllers.StaffController) {
	router.Get("/", staffController.ListStaff)
	router.Post("/", staffController.CreateStaff)
	router.Get("/creatable-roles", staffController.GetCreatableRoles)
	router.Put("/{user_id}", staffController.UpdateStaff)
	router.Delete("/{user_id}", staffController.DeleteStaff)
}
