package sessions

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	SessionCartKey   = "orcamento_session"
	CartSessionIDKey = "cart_id"
)

// CartSession pins a stable orçamento cart ID to the browser through the
// session cookie. The ID is opaque; it never references catalog rows.
type CartSession struct {
	store *sessions.CookieStore
}

func NewCartSession(secret string) *CartSession {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CartSession{store: store}
}

// GetCartID returns the cart ID bound to this browser, minting and saving a
// fresh one on first contact.
func (cs *CartSession) GetCartID(w http.ResponseWriter, r *http.Request) (string, error) {
	session, err := cs.store.Get(r, SessionCartKey)
	if err != nil {
		// A stale or tampered cookie decodes as an error but still yields a
		// usable new session; fall through and reset it.
		session, _ = cs.store.New(r, SessionCartKey)
	}

	if cartID, ok := session.Values[CartSessionIDKey].(string); ok && cartID != "" {
		return cartID, nil
	}

	newCartID := uuid.New().String()
	session.Values[CartSessionIDKey] = newCartID
	if err := session.Save(r, w); err != nil {
		return "", err
	}

	return newCartID, nil
}
