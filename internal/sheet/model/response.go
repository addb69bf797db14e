package model

// Response is the JSON object returned for every action.
type Response map[string]any

// OK returns a successful response carrying fields.
func OK(fields ...any) Response {
	resp := Response{"success": true}
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			resp[key] = fields[i+1]
		}
	}
	return resp
}

// Fail returns a failed response with message.
func Fail(message string) Response {
	return Response{"success": false, "message": message}
}

// Success reports whether the response is successful.
func (r Response) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// Encode serializes the response.
func (r Response) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeResponse parses a stored response.
func DecodeResponse(data []byte) (Response, error) {
	var r Response
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}
