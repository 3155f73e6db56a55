package repository

import (
	"strings"

	driver "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// ErrDuplicate 唯一索引冲突
var ErrDuplicate = errors.New("duplicate entry")

const mysqlDuplicateEntry = 1062

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// translateDuplicate 把 MySQL 1062 转成 ErrDuplicate
func translateDuplicate(err error) error {
	var mysqlErr *driver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}
