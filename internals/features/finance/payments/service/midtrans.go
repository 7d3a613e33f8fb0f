package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	helper "fitstudio_backend/internals/helpers"
)

/* =========================================================
   Midtrans Snap gateway
========================================================= */

type midtransGateway struct {
	client snap.Client
	now    func() time.Time
}

// NewMidtransGateway: useProduction=true for Production, false for Sandbox.
func NewMidtransGateway(serverKey string, useProduction bool) Gateway {
	g := &midtransGateway{now: time.Now}
	if useProduction {
		g.client.New(serverKey, midtrans.Production)
	} else {
		g.client.New(serverKey, midtrans.Sandbox)
	}
	return g
}

func (g *midtransGateway) Name() string { return "midtrans" }

// Charge opens a Snap transaction. The payment is left pending; the
// customer completes it on the redirect page.
func (g *midtransGateway) Charge(_ context.Context, ch Charge) (*ChargeResult, error) {
	if ch.Order == nil {
		return nil, errors.New("order is required")
	}
	externalID := fmt.Sprintf("%s-%d", ch.Order.OrderNumber, g.now().Unix())
	req, err := snapRequest(externalID, ch)
	if err != nil {
		return nil, err
	}

	resp, merr := g.client.CreateTransaction(req)
	if merr != nil {
		return nil, fmt.Errorf("midtrans create transaction: %w", merr)
	}
	return &ChargeResult{
		TransactionID: externalID,
		Settled:       false,
		Response: helper.Attributes{
			"provider":     "midtrans",
			"status":       "pending",
			"token":        resp.Token,
			"redirect_url": resp.RedirectURL,
		},
	}, nil
}

// snapRequest builds the Snap payload. Snap takes whole currency units, so
// the amount is rounded half away from zero.
func snapRequest(externalID string, ch Charge) (*snap.Request, error) {
	gross := int64(math.Round(ch.Amount))
	if gross <= 0 {
		return nil, errors.New("invalid amount")
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  externalID,
			GrossAmt: gross,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    ch.Order.OrderNumber,
				Price: gross,
				Qty:   1,
				Name:  truncate(ch.Order.ServiceName, 50),
			},
		},
	}
	if ch.Client != nil {
		first, last := splitName(ch.Client.Name)
		req.CustomerDetail = &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: ch.Client.Email,
			Phone: ch.Client.Phone,
		}
	}
	return req, nil
}

/* =========================================================
   Utils
========================================================= */

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
