package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

const defaultPendingOrdersDir = ".pending_orders"

type pendingOrderFile struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
}

// PendingOrderFileRepository is the local-dev store: one JSON file per user
// under a spool directory. Same contract as the DynamoDB store: a missing,
// unreadable or corrupt file is simply "no record".

type PendingOrderFileRepository struct {
	dir string
}

var _ interfaces.IPendingOrderStore = (*PendingOrderFileRepository)(nil)

func NewPendingOrderFileRepository(dir string) *PendingOrderFileRepository {
	if dir == "" {
		dir = getenvDefault("PENDING_ORDERS_DIR", defaultPendingOrdersDir)
	}
	return &PendingOrderFileRepository{dir: dir}
}

func (r *PendingOrderFileRepository) path(userID string) string {
	return filepath.Join(r.dir, userID+".json")
}

func (r *PendingOrderFileRepository) Save(_ context.Context, userID string, rec entities.PendingOrder) {
	if rec.IsZero() {
		r.Clear(context.Background(), userID)
		return
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		log.Printf("[pending][repository] mkdir failed dir=%s err=%v", r.dir, err)
		return
	}
	b, err := json.Marshal(pendingOrderFile{OrderID: rec.ID, Total: rec.Total})
	if err != nil {
		log.Printf("[pending][repository] marshal failed user=%s err=%v", userID, err)
		return
	}
	if err := os.WriteFile(r.path(userID), b, 0o644); err != nil {
		log.Printf("[pending][repository] save failed user=%s err=%v", userID, err)
	}
}

func (r *PendingOrderFileRepository) Read(_ context.Context, userID string) (entities.PendingOrder, bool) {
	b, err := os.ReadFile(r.path(userID))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[pending][repository] read failed user=%s err=%v", userID, err)
		}
		return entities.PendingOrder{}, false
	}

	var f pendingOrderFile
	if err := json.Unmarshal(b, &f); err != nil {
		log.Printf("[pending][repository] corrupt record discarded user=%s err=%v", userID, err)
		return entities.PendingOrder{}, false
	}
	rec := entities.PendingOrder{ID: f.OrderID, Total: f.Total}
	if rec.IsZero() {
		return entities.PendingOrder{}, false
	}
	return rec, true
}

func (r *PendingOrderFileRepository) Clear(_ context.Context, userID string) {
	if err := os.Remove(r.path(userID)); err != nil && !os.IsNotExist(err) {
		log.Printf("[pending][repository] clear failed user=%s err=%v", userID, err)
	}
}
