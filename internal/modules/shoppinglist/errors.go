package shoppinglist

import "errors"

var ErrUnknownFormat = errors.New("format must be one of: txt, csv, xlsx")
