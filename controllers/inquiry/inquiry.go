package inquiry

import (
	"travel-booking/controllers/resource"
	"travel-booking/services/notify"
	"travel-booking/storage"
	inquiryTypes "travel-booking/types/inquiry"
)

type Controller = resource.Controller[inquiryTypes.Inquiry, inquiryTypes.Patch]

func NewInquiryController(s *storage.Storage, notifier *notify.Notifier) *Controller {
	return &Controller{
		Name: "Inquiry",
		Store: resource.Store[inquiryTypes.Inquiry, inquiryTypes.Patch]{
			List:   s.ListInquiries,
			Get:    s.GetInquiry,
			Create: s.CreateInquiry,
			Update: s.UpdateInquiry,
			Delete: s.DeleteInquiry,
		},
		AfterCreate: notifier.Inquiry,
	}
}
