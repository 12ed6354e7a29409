package session

import "net/http"

// CookieName is the name of the session cookie.
const CookieName = "hanssen_session"

// FromRequest returns the session named by the request cookie, creating a
// new one (and setting its cookie on w) when the cookie is missing or
// stale. The second result reports whether a session was created.
func (st *Store) FromRequest(w http.ResponseWriter, r *http.Request) (*State, bool) {
	if c, err := r.Cookie(CookieName); err == nil {
		if s, ok := st.Get(c.Value); ok {
			return s, false
		}
	}
	s := st.Create()
	// No MaxAge: the cookie ends with the browser session.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s, true
}
