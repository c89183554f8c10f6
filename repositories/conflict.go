package repositories

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

// uniqueKeyColumns maps each unique index on vehicles to the field name
// reported to clients. The index names are fixed in the schema tags, so the
// colliding field can be read straight out of the driver's conflict report.
var uniqueKeyColumns = map[string]string{
	"idx_vehicles_plate":          "plate",
	"idx_vehicles_chassis_number": "chassis_number",
	"idx_vehicles_motor_number":   "motor_number",
	"vehicles.plate":              "plate",
	"vehicles.chassis_number":     "chassis_number",
	"vehicles.motor_number":       "motor_number",
}

// isDuplicateKey reports whether err is a uniqueness violation from the
// underlying store.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	// SQLite phrasing, seen in tests.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// conflictField resolves which unique vehicle field a duplicate-key error
// collided on. Both the MySQL message ("Duplicate entry ... for key
// 'vehicles.idx_vehicles_plate'") and the SQLite message ("UNIQUE constraint
// failed: vehicles.plate") name the violated index or column.
func conflictField(err error) string {
	msg := err.Error()
	for key, field := range uniqueKeyColumns {
		if strings.Contains(msg, key) {
			return field
		}
	}
	return ""
}
