//go:build integration
// +build integration

package client_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wanderlust/travel-client/client"
	"github.com/wanderlust/travel-client/client/fallback"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.New(backendURL, client.WithFallbackMode(fallback.ModeOff))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCatalogReadable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := newClient(t)

	require.True(t, c.Packages().List(ctx).Success)
	require.True(t, c.Travels().List(ctx).Success)
	require.True(t, c.Hotels().List(ctx).Success)
	require.True(t, c.Feedback().List(ctx).Success)
}

func TestPackageRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := newClient(t)

	name := fmt.Sprintf("Smoke %d", time.Now().UnixNano())
	created := c.Packages().Create(ctx, client.Package{PackageName: name, PackageCost: 1000, PackageType: client.PackageStandard})
	require.True(t, created.Success, created.Message)

	found := client.FilterPackages(c.Packages().List(ctx).Data, name)
	require.Len(t, found, 1)
	require.True(t, c.Packages().Delete(ctx, found[0].PackageID).Success)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c := newClient(t)

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())
	require.True(t, c.Auth().Register(ctx, client.RegisterRequest{
		Name: "Smoke", Age: 25, Mobile: "9876543210", Email: email, Password: "secret1",
	}).Success)
	login := c.Auth().Login(ctx, client.Credentials{Email: email, Password: "secret1"})
	require.True(t, login.Success, login.Message)
	require.True(t, c.Auth().Logout(ctx).Success)
}
