package entities

import "parc-system/pkg/types"

// Compte est un compte d'authentification. Distinct d'Utilisateur, qui est
// un membre du personnel suivi dans le parc.
type Compte struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	types.BaseEntity
}

// Profile porte les métadonnées affichables du compte.
type Profile struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nom    string `json:"nom"`
	Prenom string `json:"prenom"`

	types.BaseEntity
}
