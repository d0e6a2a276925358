package httpserver

import (
	"cineseek/account"
	"cineseek/catalog"
	"cineseek/contact"
)

type FetchMoviesRequest struct {
	Year  int    `json:"year" validate:"omitempty,gte=1874"`
	Page  int    `json:"page" validate:"omitempty,gte=1"`
	Genre string `json:"genre"`
}

func (r FetchMoviesRequest) ToFilter() catalog.Filter {
	return catalog.Filter{
		Year:  r.Year,
		Page:  r.Page,
		Genre: r.Genre,
	}
}

type GenerateTitleRequest struct {
	Description string `json:"description"`
}

type SignInRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

func (r SignInRequest) ToSignIn() account.SignIn {
	return account.SignIn{
		Email:      r.Email,
		Password:   r.Password,
		RememberMe: r.RememberMe,
	}
}

type SignUpRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
	Newsletter      bool   `json:"newsletter"`
}

func (r SignUpRequest) ToSignUp() account.SignUp {
	return account.SignUp{
		FullName:        r.FullName,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		AgreeToTerms:    r.AgreeToTerms,
		Newsletter:      r.Newsletter,
	}
}

type AddContactRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,notblank"`
}

func (r AddContactRequest) ToContact() contact.Contact {
	return contact.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
