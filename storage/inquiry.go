package storage

import (
	"context"

	"travel-booking/mapping"
	inquiryModel "travel-booking/models/inquiry"
	inquiryTypes "travel-booking/types/inquiry"
)

var inquiries = collection[inquiryModel.Inquiry, inquiryTypes.Inquiry, inquiryTypes.Patch]{
	table:     inquiryModel.Inquiry{}.TableName(),
	order:     OrderNewestFirst,
	fromStore: mapping.InquiryFromStore,
	toStore:   mapping.InquiryToStore,
	patch:     mapping.InquiryPatchToStore,
}

func (s *Storage) ListInquiries(ctx context.Context) ([]inquiryTypes.Inquiry, error) {
	return inquiries.list(ctx, s.backend)
}

func (s *Storage) GetInquiry(ctx context.Context, id string) (inquiryTypes.Inquiry, bool, error) {
	return inquiries.get(ctx, s.backend, id)
}

func (s *Storage) CreateInquiry(ctx context.Context, rec inquiryTypes.Inquiry) (inquiryTypes.Inquiry, error) {
	return inquiries.create(ctx, s.backend, rec)
}

func (s *Storage) UpdateInquiry(ctx context.Context, id string, p inquiryTypes.Patch) (inquiryTypes.Inquiry, bool, error) {
	return inquiries.update(ctx, s.backend, id, p)
}

func (s *Storage) DeleteInquiry(ctx context.Context, id string) (bool, error) {
	return inquiries.remove(ctx, s.backend, id)
}
