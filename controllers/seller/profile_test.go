package sellerControllers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

func strptr(s string) *string { return &s }

func TestMergeProfile_PartialUpdate(t *testing.T) {
	seller := models.Seller{
		ID:        "seller-1",
		Name:      "Rajesh Sharma",
		Email:     "rajesh@example.com",
		StoreName: "Sharma Electronics",
		Phone:     "+977 9801234567",
		Address:   "Thamel, Kathmandu",
	}

	merged := MergeProfile(seller, UpdateProfileInput{
		StoreName: strptr("Sharma Home Appliances"),
		Phone:     strptr("+977 9812345678"),
	})

	require.Equal(t, "Sharma Home Appliances", merged.StoreName)
	require.Equal(t, "+977 9812345678", merged.Phone)

	// Untouched fields survive the merge.
	require.Equal(t, "Rajesh Sharma", merged.Name)
	require.Equal(t, "rajesh@example.com", merged.Email)
	require.Equal(t, "Thamel, Kathmandu", merged.Address)
}

func TestMergeProfile_EmptyInputIsNoOp(t *testing.T) {
	seller := models.Seller{ID: "seller-1", Name: "Rajesh Sharma", StoreName: "Sharma Electronics"}

	merged := MergeProfile(seller, UpdateProfileInput{})
	require.Equal(t, seller, merged)
}

func TestMergeProfile_ExplicitEmptyStringClearsField(t *testing.T) {
	seller := models.Seller{ID: "seller-1", Avatar: "https://cdn.example.com/a.png"}

	merged := MergeProfile(seller, UpdateProfileInput{Avatar: strptr("")})
	require.Empty(t, merged.Avatar)
}
