package notify

import (
	"bytes"
	"fmt"
	"html/template"

	bookingTypes "travel-booking/types/booking"
	inquiryTypes "travel-booking/types/inquiry"
	volunteerTypes "travel-booking/types/volunteer"
)

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`<h2>New inquiry</h2>
<p><strong>{{.FirstName}} {{.LastName}}</strong> &lt;{{.Email}}&gt;{{if .Phone}}, {{.Phone}}{{end}}</p>
<p>Travel dates: {{or .ArrivalDate "?"}} to {{or .DepartureDate "?"}}</p>
<p>Guests: {{.Adults}} adults, {{.Children}} children</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}`))

var bookingTemplate = template.Must(template.New("booking").Parse(`<h2>New {{.BookingType}} booking</h2>
<p><strong>{{.ItemName}}</strong> ({{.ItemID}})</p>
<p>{{.FullName}} &lt;{{.Email}}&gt;{{if .Phone}}, {{.Phone}}{{end}}</p>
<p>{{.CheckInDate}} to {{.CheckOutDate}}, {{.NumberOfDays}} days</p>
<p>Guests: {{.Adults}} adults, {{.Children}} children</p>
{{if .SpecialRequests}}<p>{{.SpecialRequests}}</p>{{end}}`))

var applicationTemplate = template.Must(template.New("application").Parse(`<h2>New volunteer application</h2>
<p>Program: <strong>{{.ProgramID}}</strong></p>
<p>{{.FirstName}} {{.LastName}} &lt;{{.Email}}&gt;{{if .Phone}}, {{.Phone}}{{end}}</p>
<p>Nationality: {{.Nationality}}, born {{.DateOfBirth}}</p>
<p>Starting {{.StartDate}} for {{.Duration}}</p>
{{if .Excursions}}<p>Excursions:</p><ul>{{range .Excursions}}<li>{{.}}</li>{{end}}</ul>{{end}}
<p>Emergency contact: {{.EmergencyContactName}} ({{.EmergencyContactRelationship}}) {{.EmergencyContactPhone}}</p>
{{if .Motivation}}<p>{{.Motivation}}</p>{{end}}`))

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

// InquiryMessage builds the staff email for a contact-form submission
func InquiryMessage(to []string, i inquiryTypes.Inquiry) (Message, error) {
	html, err := render(inquiryTemplate, i)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		ReplyTo: i.Email,
		Subject: fmt.Sprintf("New inquiry from %s %s", i.FirstName, i.LastName),
		HTML:    html,
	}, nil
}

func BookingMessage(to []string, b bookingTypes.Booking) (Message, error) {
	html, err := render(bookingTemplate, b)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		ReplyTo: b.Email,
		Subject: fmt.Sprintf("New booking: %s (%s to %s)", b.ItemName, b.CheckInDate, b.CheckOutDate),
		HTML:    html,
	}, nil
}

func ApplicationMessage(to []string, a volunteerTypes.Application) (Message, error) {
	html, err := render(applicationTemplate, a)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		ReplyTo: a.Email,
		Subject: fmt.Sprintf("Volunteer application for %s from %s %s", a.ProgramID, a.FirstName, a.LastName),
		HTML:    html,
	}, nil
}
