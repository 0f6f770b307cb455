package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/lifecalc/internal/common"
	"github.com/dmitrijs2005/lifecalc/internal/dbx"
	"github.com/dmitrijs2005/lifecalc/internal/repositories/metadata"
)

const (
	deviceSecretKey  = "device.secret"
	deviceSecretSize = 32
)

// DeviceSecret returns the token signing secret of this database, creating
// and storing a random one on first use. It lets sessions survive restarts
// when no secret is configured.
func DeviceSecret(ctx context.Context, db *sql.DB) ([]byte, error) {
	var secret []byte

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		v, err := repo.Get(ctx, deviceSecretKey)
		if err != nil {
			return err
		}
		if len(v) > 0 {
			secret = v
			return nil
		}

		s, err := common.MakeRandHexString(deviceSecretSize)
		if err != nil {
			return fmt.Errorf("failed to generate device secret: %w", err)
		}
		if err := repo.Set(ctx, deviceSecretKey, []byte(s)); err != nil {
			return err
		}
		secret = []byte(s)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return secret, nil
}
