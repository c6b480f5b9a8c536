package main

import (
	"bazaar/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SupplierModel{},
		model.RefreshTokenModel{},
		model.LinkModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.ThreadModel{},
		model.MessageModel{},
		model.ComplaintModel{},
		model.IncidentModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
