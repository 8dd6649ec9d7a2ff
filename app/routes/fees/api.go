package fees

import (
	"database/sql"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mdlavlusheikh1/demoschool-sub003/app/billing"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/config"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/database"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/models"
	"github.com/mdlavlusheikh1/demoschool-sub003/app/services"
)

// GetFeeAccountAPI returns the student's fee account, recomputed from
// the transaction log on every read.
func GetFeeAccountAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	category := models.CategoryForStudentType(student.StudentType)
	transactions, err := database.GetTransactionsByStudent(db, student.ID, category)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	account := billing.ComputeLedger(transactions, student.StudentType, student.FeeSchedule())
	account.StudentID = student.ID

	return c.JSON(fiber.Map{
		"success":      true,
		"data":         account,
		"transactions": transactions,
	})
}

// CollectPaymentAPI records a fee collection: validates it against the
// recomputed account, allocates a sequential voucher number and
// appends the transaction. The append and the voucher allocation run
// in one database transaction; the SMS receipt afterwards is best
// effort.
func CollectPaymentAPI(c *fiber.Ctx) error {
	var request struct {
		PaidAmount    float64 `json:"paid_amount"`
		Discount      float64 `json:"discount"`
		PaymentMethod string  `json:"payment_method"`
		Notes         string  `json:"notes"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if request.Discount < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Discount cannot be negative")
	}

	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	category := models.CategoryForStudentType(student.StudentType)
	transactions, err := database.GetTransactionsByStudent(db, student.ID, category)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}

	account := billing.ComputeLedger(transactions, student.StudentType, student.FeeSchedule())
	account.StudentID = student.ID

	updated, err := billing.ApplyPayment(account, request.PaidAmount, request.Discount, student.StudentType)
	if err != nil {
		if errors.Is(err, billing.ErrNoAmount) || errors.Is(err, billing.ErrAlreadyPaid) || errors.Is(err, billing.ErrExceedsDue) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to apply payment")
	}

	transaction := &models.PaymentTransaction{
		StudentID:     student.ID,
		Category:      category,
		Amount:        request.PaidAmount,
		PaidAmount:    request.PaidAmount,
		Discount:      request.Discount,
		Status:        models.PaymentCompleted,
		CollectedBy:   collectorName(c),
		PaymentMethod: request.PaymentMethod,
		Notes:         request.Notes,
	}

	year := strconv.Itoa(time.Now().Year())
	prefix := category.VoucherPrefix()
	if err := database.AppendTransaction(db, transaction, prefix, year); err != nil {
		// Counter allocation failed: retry once with a timestamp
		// voucher so a broken counter never blocks collection.
		log.Printf("Voucher allocation failed, falling back to timestamp voucher: %v", err)
		transaction.VoucherNumber = billing.FallbackVoucher(prefix, year, time.Now())
		if err := database.AppendTransaction(db, transaction, prefix, year); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
		}
	}

	services.SendPaymentReceipt(student, transaction, updated)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":     true,
		"data":        updated,
		"transaction": transaction,
		"message":     "Payment collected successfully",
	})
}

// GetTransactionsAPI returns the raw payment history for a student.
func GetTransactionsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	category := models.FeeCategory(c.Query("category"))
	if category == "" {
		category = models.CategoryForStudentType(student.StudentType)
	}

	transactions, err := database.GetTransactionsByStudent(db, student.ID, category)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch transactions")
	}
	return c.JSON(fiber.Map{"success": true, "data": transactions})
}

// NextVoucherAPI previews the next voucher number for a category from
// history, without allocating it.
func NextVoucherAPI(c *fiber.Ctx) error {
	category := models.FeeCategory(c.Query("category", string(models.SessionFee)))
	prefix := category.VoucherPrefix()
	year := strconv.Itoa(time.Now().Year())

	vouchers, err := database.GetVoucherNumbers(config.GetDB(), prefix, year)
	if err != nil {
		// History unreadable: surface the timestamp fallback the
		// collection path would use.
		return c.JSON(fiber.Map{
			"success":  true,
			"voucher":  billing.FallbackVoucher(prefix, year, time.Now()),
			"fallback": true,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"voucher": billing.NextVoucher(vouchers, prefix, year),
	})
}

func collectorName(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok {
		return name
	}
	return ""
}
