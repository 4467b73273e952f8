package accounts

// TutorProfile данные профиля тьютора при онбординге
type TutorProfile struct {
	Specialty     string
	Experience    string
	CredentialURL string
	Description   string
}

func (p *TutorProfile) complete() bool {
	return p != nil && p.Specialty != "" && p.Experience != "" && p.CredentialURL != ""
}
