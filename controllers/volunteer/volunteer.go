package volunteer

import (
	"travel-booking/controllers/resource"
	"travel-booking/services/notify"
	"travel-booking/storage"
	volunteerTypes "travel-booking/types/volunteer"
)

type Controller = resource.Controller[volunteerTypes.Application, volunteerTypes.Patch]

func NewApplicationController(s *storage.Storage, notifier *notify.Notifier) *Controller {
	return &Controller{
		Name: "Volunteer application",
		Store: resource.Store[volunteerTypes.Application, volunteerTypes.Patch]{
			List:   s.ListVolunteerApplications,
			Get:    s.GetVolunteerApplication,
			Create: s.CreateVolunteerApplication,
			Update: s.UpdateVolunteerApplication,
			Delete: s.DeleteVolunteerApplication,
		},
		AfterCreate: notifier.Application,
	}
}
