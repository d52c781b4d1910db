package dto

// LigneRejeteeDTO référence la ligne CSV fautive par son numéro dans le
// fichier source, en-tête compris.
type LigneRejeteeDTO struct {
	Ligne  int    `json:"ligne"`
	Raison string `json:"raison"`
}

type ImportRapportDTO struct {
	Importees int               `json:"importees"`
	Rejetees  []LigneRejeteeDTO `json:"rejetees"`
}
