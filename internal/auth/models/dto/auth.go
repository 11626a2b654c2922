package dto

import "strings"

type Signup struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

func (s *Signup) Sanitize() {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
}

type Login struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (l *Login) Sanitize() {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
}
