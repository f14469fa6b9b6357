package application

import appErrors "github.com/sebuszqo/LanaApp/internal/errors"

var ErrNoNextDueDate = appErrors.NewValidationError("El pago programado no tiene proxima_fecha_vencimiento")
