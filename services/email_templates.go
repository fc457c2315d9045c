package services

// Compiled-in notification templates, used when no override exists under
// templates/emails/.

const leadHTMLFallback = `<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8fafc;">
  <div style="background: white; border-radius: 12px; padding: 32px; box-shadow: 0 4px 6px -1px rgba(0, 0, 0, 0.1);">
    <h1 style="color: #1e293b; font-size: 24px; font-weight: 600; margin-bottom: 24px; border-bottom: 2px solid #3b82f6; padding-bottom: 12px;">
      🚀 Nuevo Lead Interesado en MVP
    </h1>

    <div style="background: #f1f5f9; border-radius: 8px; padding: 20px; margin-bottom: 24px;">
      <h2 style="color: #334155; font-size: 18px; margin-bottom: 16px;">
        👤 Información del Cliente
      </h2>
      <p style="margin: 8px 0; color: #475569;"><strong>Nombre:</strong> {{.FullName}}</p>
      <p style="margin: 8px 0; color: #475569;"><strong>Email:</strong> <a href="mailto:{{.Email}}" style="color: #3b82f6; text-decoration: none;">{{.Email}}</a></p>
      <p style="margin: 8px 0; color: #475569;"><strong>Teléfono:</strong> <a href="tel:{{.Phone}}" style="color: #3b82f6; text-decoration: none;">{{.Phone}}</a></p>
    </div>

    <div style="background: #ecfdf5; border-radius: 8px; padding: 20px; margin-bottom: 24px;">
      <h2 style="color: #065f46; font-size: 18px; margin-bottom: 16px;">
        💡 Descripción del Proyecto
      </h2>
      <p style="color: #047857; line-height: 1.6; white-space: pre-wrap;">{{.ProjectDescription}}</p>
    </div>

    <div style="background: #eff6ff; border-radius: 8px; padding: 20px; text-align: center;">
      <h3 style="color: #1e40af; margin-bottom: 12px;">🎯 Acciones Sugeridas</h3>
      <p style="color: #1e40af; margin-bottom: 16px; font-size: 14px;">Responder dentro de las próximas 24 horas para mayor conversión</p>
      <div style="display: flex; gap: 12px; justify-content: center; flex-wrap: wrap;">
        <a href="mailto:{{.Email}}" style="background: #3b82f6; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 500; display: inline-block;">
          📧 Responder Email
        </a>
        <a href="tel:{{.Phone}}" style="background: #10b981; color: white; padding: 12px 24px; border-radius: 8px; text-decoration: none; font-weight: 500; display: inline-block;">
          📞 Llamar Cliente
        </a>
      </div>
    </div>

    <div style="margin-top: 24px; padding-top: 20px; border-top: 1px solid #e2e8f0; text-align: center;">
      <p style="color: #64748b; font-size: 12px; margin: 0;">
        Este email fue generado automáticamente desde tu formulario de contacto MVP Studio (Ref: {{.Ref}})
      </p>
    </div>
  </div>
</div>
`

const leadTextFallback = `🚀 NUEVO LEAD INTERESADO EN MVP

👤 INFORMACIÓN DEL CLIENTE:
Nombre: {{.FullName}}
Email: {{.Email}}
Teléfono: {{.Phone}}

💡 DESCRIPCIÓN DEL PROYECTO:
{{.ProjectDescription}}

🎯 ACCIONES SUGERIDAS:
- Responder por email: {{.Email}}
- Llamar al cliente: {{.Phone}}
- Tiempo recomendado de respuesta: 24 horas

---
Este email fue generado automáticamente desde tu formulario de contacto MVP Studio (Ref: {{.Ref}})
`
