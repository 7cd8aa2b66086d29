package orders

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"craftnest/config"
	"craftnest/db"
	"craftnest/models"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// signedOrderRef returns orderID|buyerID|signature so a scanned invoice QR
// can be verified against the server secret.
func signedOrderRef(orderID, buyerID string) string {
	data := fmt.Sprintf("%s|%s", orderID, buyerID)
	h := hmac.New(sha256.New, config.Cfg.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/orders/:orderId/invoice — owning buyer only; streams a PDF with
// the line items and a QR code of the signed order reference.
func PrintInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	orderID := ps.ByName("orderId")
	userID := utils.GetUserIDFromRequest(r)

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if order.BuyerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not have access to this order")
		return
	}

	qrPNG, err := qrcode.Encode(signedOrderRef(order.OrderID, order.BuyerID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", order.DeliveryAddress.FullName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("02 Jan 2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(25, 8, "Qty")
	pdf.Cell(30, 8, "Price")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, line := range order.Products {
		pdf.Cell(90, 8, line.ProductName)
		pdf.Cell(25, 8, fmt.Sprintf("%d", line.Quantity))
		pdf.Cell(30, 8, fmt.Sprintf("Rs %.2f", line.Price))
		pdf.Ln(7)
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: Rs %.2f", order.TotalAmount))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=invoice-"+order.OrderID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
