package repository

import "staffing/internal/domain"

// DemoProfessionals and DemoOrders form the directory the service ships with.
// migrations/0002_seed_directory.sql inserts the same rows.
func DemoProfessionals() []domain.Professional {
	return []domain.Professional{
		{ID: 1, FullName: "Ana Gómez", Profession: "Enfermera", Region: "Centro"},
		{ID: 2, FullName: "Luis Martínez", Profession: "Fisioterapeuta", Region: "Centro"},
		{ID: 3, FullName: "Laura Pérez", Profession: "Enfermera", Region: "Norte"},
		{ID: 4, FullName: "Carlos Ruiz", Profession: "Fisioterapeuta", Region: "Norte"},
		{ID: 5, FullName: "María Silva", Profession: "Enfermera", Region: "Centro"},
	}
}

func DemoOrders() []domain.Order {
	return []domain.Order{
		{
			ID:                 1,
			Code:               "ORD-001",
			Client:             "Clínica Central",
			Service:            "Cuidado domiciliario",
			Region:             "Centro",
			ProfessionRequired: "Enfermera",
			Details:            "Paciente postoperatorio con visitas diarias.",
		},
		{
			ID:                 2,
			Code:               "ORD-002",
			Client:             "Hospital del Norte",
			Service:            "Terapia física",
			Region:             "Norte",
			ProfessionRequired: "Fisioterapeuta",
			Details:            "Sesiones de rehabilitación tres veces por semana.",
		},
	}
}
