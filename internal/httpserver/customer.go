package httpserver

import "github.com/gin-gonic/gin"

func (h *handler) createCustomer(c *gin.Context) {
	var req customerRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	customer, err := h.deps.Customers.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	h.ok(c, customer, "customer created", "id", customer.ID, "user_name", customer.UserName)
}

func (h *handler) addInvoice(c *gin.Context) {
	ctx := c.Request.Context()
	userName := c.Param("userName")

	var req invoiceRequest
	if err := bindWithParent(c, &req, func() error {
		_, err := h.deps.Customers.Get(ctx, userName)
		return err
	}); err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	inv, err := h.deps.Customers.AddInvoice(ctx, userName, req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	h.ok(c, invoiceAddedResponse{Message: "Invoice added to MongoDB", NewInvoice: *inv}, "invoice added", "user_name", userName)
}

func (h *handler) listInvoices(c *gin.Context) {
	userName := c.Param("userName")
	invoices, err := h.deps.Customers.Invoices(c.Request.Context(), userName)
	if err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	h.ok(c, invoices, "invoices listed", "user_name", userName, "count", len(invoices))
}
