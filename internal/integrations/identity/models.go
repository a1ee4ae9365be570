package identity

// UserIdentity идентичность пользователя, полученная от провайдера.
// Ядро сервиса потребляет только пару {email, отображаемое имя},
// остальные атрибуты профиля игнорируются.
type UserIdentity struct {
	Email string
	Name  string
}

// profileResponse ответ profile endpoint провайдера (Microsoft Graph /me)
type profileResponse struct {
	UserPrincipalName string `json:"userPrincipalName"`
	DisplayName       string `json:"displayName"`
	Mail              string `json:"mail"`
}

// toIdentity извлекает идентичность из профиля.
// Mail бывает пустым для гостевых аккаунтов, тогда берём userPrincipalName.
func (p *profileResponse) toIdentity() UserIdentity {
	email := p.Mail
	if email == "" {
		email = p.UserPrincipalName
	}
	return UserIdentity{Email: email, Name: p.DisplayName}
}
