package business

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMakeSubdomain(t *testing.T) {
	cases := map[string]string{
		"Salon Amel":          "salon-amel",
		"  Café El Bahdja  ":  "caf-el-bahdja",
		"Pizzeria --- Oran":   "pizzeria-oran",
		"admin":               "business",
		"www":                 "business",
		"!!!":                 "business",
		"Taxi 24/7 Alger":     "taxi-247-alger",
		"PLOMBERIE KHELIFA":   "plomberie-khelifa",
		"boutique-mode-setif": "boutique-mode-setif",
	}

	for name, want := range cases {
		require.Equal(t, want, MakeSubdomain(name), "input: %q", name)
	}
}

func subdomainTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Business{}))
	return db
}

func TestEnsureUniqueSubdomainFreeBase(t *testing.T) {
	db := subdomainTestDB(t)

	got, err := EnsureUniqueSubdomain(db, "Salon Amel")
	require.NoError(t, err)
	require.Equal(t, "salon-amel", got)
}

func TestEnsureUniqueSubdomainSuffixes(t *testing.T) {
	db := subdomainTestDB(t)

	require.NoError(t, db.Create(&Business{
		UserID: 1, Name: "Salon Amel", Category: "beaute", Subdomain: "salon-amel",
	}).Error)
	require.NoError(t, db.Create(&Business{
		UserID: 2, Name: "Salon Amel", Category: "beaute", Subdomain: "salon-amel-2",
	}).Error)

	got, err := EnsureUniqueSubdomain(db, "Salon Amel")
	require.NoError(t, err)
	require.Equal(t, "salon-amel-3", got)
}

func TestEnsureUniqueSubdomainExhausted(t *testing.T) {
	db := subdomainTestDB(t)

	for i := 1; i <= maxSubdomainAttempts; i++ {
		sub := "kiosque"
		if i > 1 {
			sub = fmt.Sprintf("kiosque-%d", i)
		}
		require.NoError(t, db.Create(&Business{
			UserID: uint(i), Name: "Kiosque", Category: "commerce", Subdomain: sub,
		}).Error)
	}

	_, err := EnsureUniqueSubdomain(db, "Kiosque")
	require.Error(t, err)
}
