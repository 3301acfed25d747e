package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/DimaFrost/glass-cal/pkg/store"
)

type Remove struct {
	ID string

	Store *store.Store
}

// Do deletes the event. Unknown ids surface as an error here even though
// the store treats them as a no-op; the CLI user asked for a specific id.
func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	if n.Store.Find(n.ID) == nil {
		return errors.New("no event with id " + n.ID)
	}
	n.Store.DeleteEvent(n.ID)
	fmt.Println("removed", n.ID)
	return nil
}
