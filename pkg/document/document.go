// Package document, client'tan gelen tipsiz JSON ağacı (map[string]any) üzerinde
// tip-güvenli okuma yardımcıları sağlar.
//
// Alias chain: aynı bilgi farklı client'larda farklı alan adlarıyla gelebilir
// (ör: "name" veya "title"). String/Int/Bool fonksiyonları verilen path'leri
// sırayla dener, ilk "mevcut ve null olmayan" değeri döner; hiçbiri yoksa default.
//
//	name := document.String(doc, "Product", "name", "title")
//	first := document.String(doc, "", "billing.first_name", "customer.first_name")
//
// Path'ler nokta ile ayrılır ve sadece iç içe objelerde ilerler.
package document

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Lookup, path'teki değeri döner. Değer yoksa veya null ise ok=false.
func Lookup(doc map[string]any, path string) (any, bool) {
	if doc == nil {
		return nil, false
	}

	var current any = doc
	for _, key := range strings.Split(path, ".") {
		obj, isObj := current.(map[string]any)
		if !isObj {
			return nil, false
		}
		v, exists := obj[key]
		if !exists || v == nil {
			return nil, false
		}
		current = v
	}
	return current, true
}

// Has, alanın dokümanda (null olsa bile) tanımlı olup olmadığını döner.
// Validation "alan gönderildi mi" sorusunu bu şekilde sorar.
func Has(doc map[string]any, key string) bool {
	_, ok := doc[key]
	return ok
}

// Object, path'teki iç içe objeyi döner; yoksa veya obje değilse nil.
func Object(doc map[string]any, path string) map[string]any {
	v, ok := Lookup(doc, path)
	if !ok {
		return nil
	}
	obj, _ := v.(map[string]any)
	return obj
}

// List, ilk bulunan liste değerini döner. Alan liste değilse sıradaki path denenir.
// Hiçbiri uymazsa boş (nil olmayan) slice döner.
func List(doc map[string]any, paths ...string) []any {
	for _, p := range paths {
		v, ok := Lookup(doc, p)
		if !ok {
			continue
		}
		if list, isList := v.([]any); isList {
			return list
		}
	}
	return []any{}
}

// String, alias chain'deki ilk scalar değeri string olarak döner.
func String(doc map[string]any, def string, paths ...string) string {
	for _, p := range paths {
		v, ok := Lookup(doc, p)
		if !ok {
			continue
		}
		if s, ok := ToString(v); ok {
			return s
		}
	}
	return def
}

// Int, alias chain'deki ilk sayıya çevrilebilen değeri döner.
func Int(doc map[string]any, def int, paths ...string) int {
	for _, p := range paths {
		v, ok := Lookup(doc, p)
		if !ok {
			continue
		}
		if n, ok := ToInt(v); ok {
			return n
		}
	}
	return def
}

// Bool, alias chain'deki ilk boolean değeri döner.
func Bool(doc map[string]any, def bool, paths ...string) bool {
	for _, p := range paths {
		v, ok := Lookup(doc, p)
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			if parsed, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
				return parsed
			}
		}
	}
	return def
}

// ToString, scalar bir JSON değerini string'e çevirir.
// Obje ve listeler scalar değildir → ok=false.
func ToString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case json.Number:
		return val.String(), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

// ToInt, sayısal bir JSON değerini int'e çevirir. Ondalıklı sayılar kesilir,
// sayısal string'ler parse edilir.
func ToInt(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return int(val), true
	case int:
		return val, true
	case int64:
		return int(val), true
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n), true
		}
		if f, err := val.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// IsInteger, değerin JSON'da tam sayı olarak gelip gelmediğini kontrol eder.
// 3 ve 3.0 tam sayıdır, 3.5 ve "3" değildir; bool asla sayı sayılmaz.
func IsInteger(v any) bool {
	switch val := v.(type) {
	case int, int64:
		return true
	case float64:
		return val == math.Trunc(val) && !math.IsInf(val, 0)
	case json.Number:
		_, err := val.Int64()
		return err == nil
	default:
		return false
	}
}

// IsNumber, değerin JSON number olup olmadığını döner.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int64, float64, json.Number:
		return true
	default:
		return false
	}
}

// Display, herhangi bir değeri gösterim amaçlı string'e çevirir.
// null → "", scalar → ToString, obje/liste → kompakt JSON.
func Display(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := ToString(v); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
