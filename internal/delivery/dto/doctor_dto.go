package dto

type DoctorCard struct {
	ID             string
	Name           string
	Specialization string
	Scheme         string
	Experience     string
	Phone          string
	Available      bool
}

type DoctorsPage struct {
	Query   string
	Doctors []DoctorCard
	Total   int
	Loading bool
	Error   string
}
