package queries

const (
	InsertAppointmentIfAbsent = `
		INSERT INTO appointments (
			id,
			user_id,
			doctor_name,
			specialty,
			appointment_date,
			appointment_time,
			patient_name,
			patient_phone,
			symptoms,
			payment_id,
			order_id,
			amount,
			currency,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (payment_id) DO NOTHING
		RETURNING id
	`

	GetAppointmentByPaymentID = `
		SELECT
			id,
			user_id,
			doctor_name,
			specialty,
			appointment_date,
			appointment_time,
			patient_name,
			patient_phone,
			symptoms,
			payment_id,
			order_id,
			amount,
			currency,
			status,
			created_at,
			updated_at
		FROM appointments
		WHERE payment_id = $1
	`

	GetAppointmentByID = `
		SELECT
			id,
			user_id,
			doctor_name,
			specialty,
			appointment_date,
			appointment_time,
			patient_name,
			patient_phone,
			symptoms,
			payment_id,
			order_id,
			amount,
			currency,
			status,
			created_at,
			updated_at
		FROM appointments
		WHERE id = $1
	`
)
