package model

// CustomerFields holds every customer attribute except the identifier.
// A nil field is stored as NULL.
type CustomerFields struct {
	Nombre    *string `json:"nombre" validate:"omitempty,max=255"`
	Correo    *string `json:"correo" validate:"omitempty,max=255"`
	Telefono  *int32  `json:"telefono"`
	Direccion *string `json:"direccion" validate:"omitempty,max=255"`
}

// Customer is customer model entity, mapped to the clientes table
type Customer struct {
	ID int64 `json:"id"`
	CustomerFields
}
