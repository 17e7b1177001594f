// Package policy — чистые решения о правах по уже извлечённому принципалу
// и username владельца ресурса. Пакет сам принципала не достаёт (это
// делает principal.ResolveCurrent) и ничего не мутирует: решения
// тестируются независимо от транспорта и хранилища.
package policy

import (
	"github.com/vazgensoghoyan/folk-is-love/internal/domain"
)

func IsAdmin(p domain.Principal) bool { return p.Role == domain.RoleAdmin }

func IsOwner(p domain.Principal, owner string) bool { return p.Username == owner }

func IsOwnerOrAdmin(p domain.Principal, owner string) bool {
	return IsOwner(p, owner) || IsAdmin(p)
}

// Check* — те же предикаты, но с ошибкой KindAccessDenied для мест,
// где мутацию нужно оборвать. Это единственный гейт перед owner/admin
// мутациями, второго слоя проверки нет.

func CheckIsAdmin(p domain.Principal) error {
	if !IsAdmin(p) {
		return domain.E(domain.KindAccessDenied, "You are not admin")
	}
	return nil
}

func CheckIsOwner(p domain.Principal, owner string) error {
	if !IsOwner(p, owner) {
		return domain.E(domain.KindAccessDenied, "You are not owner of this resource")
	}
	return nil
}

func CheckIsOwnerOrAdmin(p domain.Principal, owner string) error {
	if !IsOwnerOrAdmin(p, owner) {
		return domain.E(domain.KindAccessDenied, "You don't have permission to access this resource")
	}
	return nil
}
