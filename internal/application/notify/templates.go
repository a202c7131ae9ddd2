package notify

import (
	"bytes"
	"fmt"
	"html/template"
)

// emailData is the payload every template renders against. Branding comes
// from the injected config, never from package globals.
type emailData struct {
	AppName  string
	AppColor string
	LogoURL  string
	Name     string
	Code     string
}

var (
	resetTmpl = template.Must(template.New("reset").Parse(`
    <div style="background-color: #f9f9f9; padding: 50px 0; font-family: sans-serif;">
      <div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 20px; padding: 40px; text-align: center; box-shadow: 0 10px 30px rgba(0,0,0,0.05);">
        <img src="{{.LogoURL}}" alt="{{.AppName}}" style="height: 140px; margin-bottom: 25px;">
        <h2 style="color: #1a1a1a; font-size: 24px;">Password Reset</h2>
        <p style="color: #666; font-size: 16px;">Use the code below to reset your password:</p>
        <div style="background-color: #f0f2f5; border: 1px solid {{.AppColor}}; border-radius: 12px; padding: 25px; margin: 30px 0; display: inline-block;">
          <span style="font-size: 36px; font-weight: 800; color: {{.AppColor}}; letter-spacing: 8px;">{{.Code}}</span>
        </div>
        <p style="color: #999; font-size: 13px;">This code expires in 10 minutes.</p>
      </div>
    </div>`))

	activationTmpl = template.Must(template.New("activation").Parse(`
    <div style="margin: 0; padding: 0; background-color: #ffffff; font-family: sans-serif;">
      <table border="0" cellpadding="0" cellspacing="0" width="100%">
        <tr>
          <td align="center" style="padding: 40px 0;">
            <div style="max-width: 500px; width: 100%; border: 1px solid #f0f0f0; border-radius: 24px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.03);">
              <div style="padding: 40px 40px 20px 40px; text-align: center;">
                <img src="{{.LogoURL}}" alt="{{.AppName}}" style="height: 140px; margin-bottom: 25px;">
                <h1 style="color: #1a1a1a; font-size: 28px; font-weight: 700;">Account Activation</h1>
                <p style="color: #666; font-size: 16px; margin: 20px 0 30px 0;">Hello {{.Name}}, use the code below to verify your email.</p>
                <div style="background-color: #f0f2f5; border: 2px solid {{.AppColor}}; border-radius: 16px; padding: 25px; display: inline-block;">
                  <span style="font-size: 42px; font-weight: 800; color: {{.AppColor}}; letter-spacing: 12px;">{{.Code}}</span>
                </div>
                <p style="color: #999; font-size: 13px; margin-top: 30px;">Expiration: 15 minutes.</p>
              </div>
            </div>
          </td>
        </tr>
      </table>
    </div>`))

	welcomeTmpl = template.Must(template.New("welcome").Parse(`
    <div style="margin: 0; padding: 0; background-color: #ffffff; font-family: sans-serif;">
      <table border="0" cellpadding="0" cellspacing="0" width="100%">
        <tr>
          <td align="center" style="padding: 40px 0;">
            <div style="max-width: 600px; width: 100%; border: 1px solid #f0f0f0; border-radius: 20px; overflow: hidden;">
              <div style="padding: 40px; text-align: center;">
                <img src="{{.LogoURL}}" alt="{{.AppName}}" style="height: 140px; margin-bottom: 25px;">
                <h1 style="color: #1a1a1a; font-size: 28px;">Welcome, {{.Name}}!</h1>
                <p style="color: #666; margin-top: 15px;">Your healthy journey starts now.</p>
              </div>
              <div style="padding: 0 40px 40px 40px;">
                <div style="background-color: #f0f2f5; border-radius: 20px; padding: 30px; text-align: center;">
                  <h2 style="color: {{.AppColor}}; font-size: 18px; margin-top: 0;">5-2-1-0 Principles</h2>
                  <p style="color: #444; font-size: 15px; line-height: 1.6;">
                    🍎 5 Fruits &amp; Veggies | 📺 2h Screen Max<br>
                    🏃 1h Activity | 💧 0 Sugary Drinks
                  </p>
                </div>
              </div>
            </div>
          </td>
        </tr>
      </table>
    </div>`))

	passwordChangedTmpl = template.Must(template.New("password_changed").Parse(`
    <div style="background-color: #f9f9f9; padding: 50px 0; font-family: sans-serif;">
      <div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 20px; padding: 40px; text-align: center; box-shadow: 0 10px 30px rgba(0,0,0,0.05);">
        <img src="{{.LogoURL}}" alt="{{.AppName}}" style="height: 140px; margin-bottom: 25px;">
        <h2 style="color: {{.AppColor}}; font-size: 24px;">Password Changed</h2>
        <p style="color: #666; font-size: 16px;">Your password was successfully updated.</p>
        <div style="margin: 30px 0;">
          <p style="color: #999; font-size: 13px;">If you didn't make this change, please recover your account immediately.</p>
        </div>
      </div>
    </div>`))
)

func render(t *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", t.Name(), err)
	}
	return buf.String(), nil
}
