package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	bCtx "github.com/tradeloot/goapi/base/ctx"
	"github.com/tradeloot/goapi/base/delivery"
	"github.com/tradeloot/goapi/domain"
	"github.com/tradeloot/goapi/domain/listing"
	"github.com/tradeloot/goapi/domain/marketplace"
	"github.com/tradeloot/goapi/domain/mysterybox"
	"github.com/tradeloot/goapi/middleware"
)

const paymentHeaderName = "X-Payment"

// x402Response is the 402 body shape: protocol version plus the list of
// acceptable payment requirements.
type x402Response struct {
	X402Version int                           `json:"x402Version"`
	Accepts     []*domain.PaymentRequirements `json:"accepts"`
	Error       string                        `json:"error,omitempty"`
}

type handler struct {
	marketplace marketplace.UseCase
	boxes       mysterybox.UseCase
}

func New(e *echo.Echo, mk marketplace.UseCase, boxes mysterybox.UseCase) {
	h := &handler{
		marketplace: mk,
		boxes:       boxes,
	}

	g := e.Group("/marketplace")
	g.POST("/listings", h.createListing)
	g.GET("/listings", h.getActiveListings)
	g.GET("/listings/user/:username", h.getListingsByUser, middleware.RequireUsername("username"))
	g.GET("/listings/:id", h.getListing)
	g.DELETE("/listings/:id", h.cancelListing)
	g.GET("/listings/:id/purchase", h.purchaseListing)
	g.POST("/listings/:id/purchase", h.purchaseListingWithBody)
	g.GET("/mysterybox/tiers", h.getTiers, middleware.CacheHttp(30*time.Second))
	g.GET("/mysterybox/tiers/:id/purchase", h.purchaseMysteryBox)
	g.POST("/mysterybox/tiers/:id/purchase", h.purchaseMysteryBoxWithBody)
	g.GET("/mysterybox/purchases/:username", h.getBoxPurchases, middleware.RequireUsername("username"))
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	p := &listing.CreateListingParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.marketplace.CreateListing(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}

func (h *handler) getActiveListings(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	opts := []listing.FindAllOptionsFunc{}
	if sortBy := c.QueryParam("sortBy"); sortBy != "" {
		opts = append(opts, listing.WithSortBy(listing.SortBy(sortBy)))
	}
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidParam.WithMessagef("limit must be an integer"))
		}
		opts = append(opts, listing.WithLimit(limit))
	} else {
		opts = append(opts, listing.WithLimit(listing.DefaultLimit))
	}
	if cursor := c.QueryParam("cursor"); cursor != "" {
		opts = append(opts, listing.WithCursor(cursor))
	}
	if seller := c.QueryParam("seller"); seller != "" {
		opts = append(opts, listing.WithSeller(domain.Username(seller)))
	}

	page, err := h.marketplace.GetActiveListings(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, page)
}

func (h *handler) getListingsByUser(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	res, err := h.marketplace.GetListingsByUser(ctx, domain.Username(c.Param("username")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	l, err := h.marketplace.GetListing(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	username := c.QueryParam("username")
	if username == "" {
		// also accept the username in a JSON body
		p := struct {
			Username string `json:"username"`
		}{}
		if err := c.Bind(&p); err == nil {
			username = p.Username
		}
	}

	l, err := h.marketplace.CancelListing(ctx, c.Param("id"), domain.Username(username))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) purchaseListing(c echo.Context) error {
	buyer := marketplace.BuyerInfo{
		Username: domain.Username(c.QueryParam("username")),
		Wallet:   domain.WalletAddress(c.QueryParam("wallet")),
	}
	return h.settleListing(c, buyer)
}

func (h *handler) purchaseListingWithBody(c echo.Context) error {
	buyer := marketplace.BuyerInfo{}
	if err := c.Bind(&buyer); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return h.settleListing(c, buyer)
}

// settleListing drives the two-phase x402 purchase: a request carrying
// a payment proof settles, one without gets 402 + requirements (or an
// immediate mock-mode settlement).
func (h *handler) settleListing(c echo.Context, buyer marketplace.BuyerInfo) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	id := c.Param("id")

	if paymentHeader := c.Request().Header.Get(paymentHeaderName); paymentHeader != "" {
		result, err := h.marketplace.VerifyAndCompletePurchase(ctx, id, paymentHeader, buyer)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusOK, result)
	}

	resp, err := h.marketplace.HandlePurchaseRequest(ctx, id, buyer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if resp.RequiresPayment {
		return c.JSON(http.StatusPaymentRequired, x402Response{
			X402Version: 1,
			Accepts:     []*domain.PaymentRequirements{resp.PaymentRequirements},
			Error:       "payment required",
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resp.PurchaseResult)
}

func (h *handler) getTiers(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	tiers, err := h.marketplace.GetMysteryBoxTiers(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, tiers)
}

func (h *handler) purchaseMysteryBox(c echo.Context) error {
	buyer := marketplace.BuyerInfo{
		Username: domain.Username(c.QueryParam("username")),
		Wallet:   domain.WalletAddress(c.QueryParam("wallet")),
	}
	return h.settleMysteryBox(c, buyer)
}

func (h *handler) purchaseMysteryBoxWithBody(c echo.Context) error {
	buyer := marketplace.BuyerInfo{}
	if err := c.Bind(&buyer); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	return h.settleMysteryBox(c, buyer)
}

func (h *handler) settleMysteryBox(c echo.Context, buyer marketplace.BuyerInfo) error {
	ctx := c.Get("ctx").(bCtx.Ctx)
	id := c.Param("id")

	if paymentHeader := c.Request().Header.Get(paymentHeaderName); paymentHeader != "" {
		result, err := h.marketplace.VerifyAndCompleteMysteryBox(ctx, id, paymentHeader, buyer)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusOK, result)
	}

	resp, err := h.marketplace.HandleMysteryBoxRequest(ctx, id, buyer)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if resp.RequiresPayment {
		return c.JSON(http.StatusPaymentRequired, x402Response{
			X402Version: 1,
			Accepts:     []*domain.PaymentRequirements{resp.PaymentRequirements},
			Error:       "payment required",
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, resp.PurchaseResult)
}

func (h *handler) getBoxPurchases(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	res, err := h.boxes.GetPurchasesByBuyer(ctx, domain.Username(c.Param("username")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
