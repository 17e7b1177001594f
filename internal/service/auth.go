// Package service — прикладные сценарии поверх domain-контрактов.
// Сервисы не знают про HTTP: принимают ctx + простые аргументы,
// возвращают доменные типы и *domain.Error.
package service

import (
	"log"
	"time"

	"context"

	"github.com/vazgensoghoyan/folk-is-love/internal/auth/validate"
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

// Auth — регистрация и вход. Оркестрирует валидатор, внешний store,
// внешний хешер и выпуск токена.
type Auth struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
	Tokens domain.TokenManager
}

// Register проверяет креденшелы (первая ошибка побеждает), затем
// уникальность username и email, хеширует пароль и создаёт запись
// с ролью USER. Роль при регистрации не принимается от вызывающего
// ни в каком виде.
func (s *Auth) Register(ctx context.Context, username, email, password string) (domain.Principal, error) {
	if err := validate.Username(username); err != nil {
		return domain.Principal{}, err
	}
	if err := validate.Email(email); err != nil {
		return domain.Principal{}, err
	}
	if err := validate.Password(password); err != nil {
		return domain.Principal{}, err
	}

	taken, err := s.Users.ExistsByUsername(ctx, username)
	if err != nil {
		return domain.Principal{}, err
	}
	if taken {
		return domain.Principal{}, domain.E(domain.KindUsernameTaken, "Username already taken: "+username)
	}

	registered, err := s.Users.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.Principal{}, err
	}
	if registered {
		return domain.Principal{}, domain.E(domain.KindEmailTaken, "Email already registered: "+email)
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.Principal{}, domain.E(domain.KindUnexpected, "failed to hash password")
	}

	u, err := s.Users.CreateUser(ctx, domain.User{
		Username: username,
		Email:    email,
		PassHash: hash,
		Role:     domain.RoleUser,
	})
	if err != nil {
		// гонка на уникальных индексах приходит из store уже типизированной
		return domain.Principal{}, err
	}

	s.Log.Printf("registered user=%s", u.Username)
	return domain.Principal{Username: u.Username, Role: u.Role}, nil
}

// Login: поиск по username, сверка пароля. Отказ в обоих случаях один
// и тот же — нельзя дать узнать, существует ли username (enumeration).
func (s *Auth) Login(ctx context.Context, username, password string) (domain.Token, error) {
	u, err := s.Users.UserByUsername(ctx, username)
	if err != nil {
		return "", domain.E(domain.KindInvalidCredentials, "Invalid username or password")
	}

	ok, err := s.Hasher.Verify(password, u.PassHash)
	if err != nil || !ok {
		return "", domain.E(domain.KindInvalidCredentials, "Invalid username or password")
	}

	// Бан проверяется после сверки пароля: ответ отличается только для
	// того, кто и так владеет аккаунтом. Живые токены бан не отзывает.
	if u.Banned {
		s.Log.Printf("login denied (banned) user=%s", u.Username)
		return "", domain.E(domain.KindAccessDenied, "User is banned")
	}

	t, err := s.Tokens.Issue(domain.Principal{Username: u.Username, Role: u.Role}, time.Now().UTC())
	if err != nil {
		return "", err
	}
	s.Log.Printf("login ok user=%s", u.Username)
	return t, nil
}
