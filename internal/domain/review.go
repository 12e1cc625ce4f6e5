package domain

import "time"

// Review is a user's feedback on a place. Beyond the fixed columns it
// carries an open attribute bag: PUT may merge arbitrary keys into a
// review, and those survive round-trips through storage.
type Review struct {
	ID        string         `json:"id"`
	PlaceID   string         `json:"place_id"`
	UserID    string         `json:"user_id"`
	Text      string         `json:"text"`
	Extra     map[string]any `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ToJSON flattens the review into its wire shape: fixed fields plus any
// extra attributes at the top level. Fixed fields win on key collision.
func (r *Review) ToJSON() map[string]any {
	out := make(map[string]any, len(r.Extra)+6)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["id"] = r.ID
	out["place_id"] = r.PlaceID
	out["user_id"] = r.UserID
	out["text"] = r.Text
	out["created_at"] = r.CreatedAt
	out["updated_at"] = r.UpdatedAt
	return out
}

// SetExtra stores an arbitrary attribute, allocating the bag lazily.
func (r *Review) SetExtra(key string, value any) {
	if r.Extra == nil {
		r.Extra = make(map[string]any)
	}
	r.Extra[key] = value
}
