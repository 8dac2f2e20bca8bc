package notifications

import "html/template"

const emailStyles = `
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f5f5f5; }
.container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
.header { background: linear-gradient(135deg, #0D9488 0%, #14B8A6 100%); padding: 40px 20px; text-align: center; }
.header h1 { color: #ffffff; margin: 0; font-size: 28px; }
.content { padding: 40px 30px; }
.details-card { background-color: #f8f9fa; border-radius: 12px; padding: 24px; margin: 24px 0; }
.detail-row { display: flex; justify-content: space-between; padding: 12px 0; border-bottom: 1px solid #e5e7eb; }
.detail-label { color: #6b7280; font-size: 14px; }
.detail-value { color: #111827; font-weight: 600; font-size: 14px; }
.notice { background-color: #FEF3C7; border-left: 4px solid #F59E0B; padding: 16px; margin: 24px 0; border-radius: 0 8px 8px 0; }
.cta-button { display: inline-block; background: #0D9488; color: white; text-decoration: none; padding: 14px 28px; border-radius: 8px; font-weight: 600; margin: 20px 0; }
.footer { text-align: center; padding: 30px; color: #6b7280; font-size: 12px; background-color: #f8f9fa; }
`

type confirmationEmailData struct {
	Styles           template.CSS
	PatientName      string
	DoctorName       string
	Specialty        string
	AppointmentDate  string
	AppointmentTime  string
	ConsultationType string
	AppointmentsLink string
	SupportEmail     string
	Year             int
}

type reminderEmailData struct {
	Styles           template.CSS
	PatientName      string
	DoctorName       string
	Specialty        string
	AppointmentDate  string
	AppointmentTime  string
	ConsultationLink string
	SupportEmail     string
	Year             int
}

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head><style>{{.Styles}}</style></head>
<body>
  <div class="container">
    <div class="header"><h1>MediConnect</h1></div>
    <div class="content">
      <h2 style="text-align: center; color: #111827;">Appointment Confirmed!</h2>
      <p style="text-align: center; color: #6b7280;">Hello {{.PatientName}}, your consultation has been successfully booked.</p>
      <div class="details-card">
        <div class="detail-row"><span class="detail-label">Doctor</span><span class="detail-value">{{.DoctorName}}</span></div>
        <div class="detail-row"><span class="detail-label">Specialty</span><span class="detail-value">{{.Specialty}}</span></div>
        <div class="detail-row"><span class="detail-label">Date</span><span class="detail-value">{{.AppointmentDate}}</span></div>
        <div class="detail-row"><span class="detail-label">Time</span><span class="detail-value">{{.AppointmentTime}}</span></div>
        <div class="detail-row"><span class="detail-label">Type</span><span class="detail-value">{{.ConsultationType}}</span></div>
      </div>
      <div class="notice"><strong>Reminder:</strong> You'll receive another email before your consultation with the link to join.</div>
      <div style="text-align: center;"><a href="{{.AppointmentsLink}}" class="cta-button">View My Appointments</a></div>
    </div>
    <div class="footer">
      <p>{{.Year}} MediConnect. All rights reserved.</p>
      <p>Questions? Contact us at {{.SupportEmail}}</p>
    </div>
  </div>
</body>
</html>`))

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head><style>{{.Styles}}</style></head>
<body>
  <div class="container">
    <div class="header"><h1>MediConnect</h1></div>
    <div class="content">
      <h2 style="text-align: center; color: #111827;">Hi {{.PatientName}}!</h2>
      <p style="text-align: center; color: #6b7280;">Your video consultation is about to start. Make sure you're ready!</p>
      <div class="details-card">
        <div class="detail-row"><span class="detail-label">Doctor</span><span class="detail-value">{{.DoctorName}}</span></div>
        <div class="detail-row"><span class="detail-label">Specialty</span><span class="detail-value">{{.Specialty}}</span></div>
        {{if .AppointmentDate}}<div class="detail-row"><span class="detail-label">Date</span><span class="detail-value">{{.AppointmentDate}}</span></div>{{end}}
        <div class="detail-row"><span class="detail-label">Time</span><span class="detail-value">{{.AppointmentTime}}</span></div>
      </div>
      <div style="text-align: center;"><a href="{{.ConsultationLink}}" class="cta-button">Join Consultation Now</a></div>
      <div class="notice">
        <strong>Quick Checklist:</strong>
        <ul>
          <li>Find a quiet, well-lit space</li>
          <li>Check your camera and microphone</li>
          <li>Have your medical documents ready</li>
          <li>Prepare any questions you want to ask</li>
        </ul>
      </div>
    </div>
    <div class="footer">
      <p>{{.Year}} MediConnect. All rights reserved.</p>
      <p>Need help? Contact us at {{.SupportEmail}}</p>
    </div>
  </div>
</body>
</html>`))
