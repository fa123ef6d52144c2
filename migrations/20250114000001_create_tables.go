package migrations

import (
	"context"

	"github.com/bozhidarvelkov/pixelmorph/internal/models"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().
			Model((*models.UserDB)(nil)).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*models.UserDB)(nil)).
			Index("idx_users_clerk_id").
			Column("clerk_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().
			Model((*models.ImageDB)(nil)).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateIndex().
			Model((*models.ImageDB)(nil)).
			Index("idx_images_author_created").
			Column("author_id", "created_at").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().
			Model((*models.TransactionDB)(nil)).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return err
		}

		_, err := db.NewCreateIndex().
			Model((*models.TransactionDB)(nil)).
			Index("idx_transactions_buyer").
			Column("buyer_id").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		for _, model := range []any{
			(*models.TransactionDB)(nil),
			(*models.ImageDB)(nil),
			(*models.UserDB)(nil),
		} {
			if _, err := db.NewDropTable().
				Model(model).
				IfExists().
				Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}
