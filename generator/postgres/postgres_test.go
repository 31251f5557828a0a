// Copyright (c) 2021 Patrick Ascher <development@fullhouse-productions.com>. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package postgres_test

import (
	"testing"

	"github.com/patrickascher/gofer-migrate/generator"
	_ "github.com/patrickascher/gofer-migrate/generator/postgres"
	"github.com/patrickascher/gofer-migrate/migration"
	"github.com/patrickascher/gofer-migrate/model"
	"github.com/stretchr/testify/assert"
)

func TestPostgresGenerator(t *testing.T) {
	asserts := assert.New(t)

	g, ok := generator.Lookup("Postgres")
	asserts.True(ok)

	ctx := migration.NewContext("public")
	ctx.Create().Table("users").
		WithColumn("id").AsInt64().PrimaryKey().Identity().NotNullable().
		WithColumn("name").AsString(100).NotNullable().WithDefaultValue("").
		WithColumn("active").AsBoolean().WithDefaultValue(true)
	ctx.Alter().Table("users").AddColumn("age").AsInt32().NotNullable().SetExistingRowsTo(0)
	ctx.Alter().Column("name").OnTable("users").AsString(0).Nullable().WithDefaultValue(model.RawSQL("'n/a'"))
	ctx.Update().Table("users").Set("active", false).Where("deleted_at", nil)
	asserts.NoError(ctx.Err())

	stmts, err := generator.Render(g, ctx.Expressions())
	asserts.NoError(err)
	asserts.Equal([]string{
		`CREATE TABLE "public"."users" ("id" BIGINT GENERATED BY DEFAULT AS IDENTITY NOT NULL, "name" VARCHAR(100) DEFAULT '' NOT NULL, "active" BOOLEAN DEFAULT true, PRIMARY KEY ("id"))`,
		`ALTER TABLE "public"."users" ADD COLUMN "age" INTEGER NULL`,
		`UPDATE "public"."users" SET "age" = 0`,
		`ALTER TABLE "public"."users" ALTER COLUMN "age" TYPE INTEGER, ALTER COLUMN "age" SET NOT NULL`,
		`ALTER TABLE "public"."users" ALTER COLUMN "name" TYPE TEXT, ALTER COLUMN "name" DROP NOT NULL, ALTER COLUMN "name" SET DEFAULT 'n/a'`,
		`UPDATE "public"."users" SET "active" = false WHERE "deleted_at" IS NULL`,
	}, stmts)
}

// TestPostgresGenerator_CustomType renders the backfill sequence of a custom typed column.
func TestPostgresGenerator_CustomType(t *testing.T) {
	asserts := assert.New(t)
	g, _ := generator.Lookup("postgres")

	ctx := migration.NewContext("")
	ctx.Alter().Table("Flinstone").InSchema("Fred").
		AddColumn("ColName").AsInt32().AsCustom("CustomType").NotNullable().SetExistingRowsTo(5)

	stmts, err := generator.Render(g, ctx.Expressions())
	asserts.NoError(err)
	asserts.Equal([]string{
		`ALTER TABLE "Fred"."Flinstone" ADD COLUMN "ColName" CustomType NULL`,
		`UPDATE "Fred"."Flinstone" SET "ColName" = 5`,
		`ALTER TABLE "Fred"."Flinstone" ALTER COLUMN "ColName" TYPE CustomType, ALTER COLUMN "ColName" SET NOT NULL`,
	}, stmts)
}
