package contextkeys

type contextKey string

// OwnerIDKey porte l'identifiant du compte authentifié (session explicite,
// injectée par le middleware d'authentification).
const OwnerIDKey contextKey = "ownerID"
