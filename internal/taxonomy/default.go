package taxonomy

// defaultRoles is the built-in role -> required-skills table. The label
// space must stay in sync with the job-role classifier: a label the
// classifier emits that is missing here surfaces as an UnknownRoleError
// downstream.
var defaultRoles = map[string][]string{
	"Java Developer":            {"Java", "Spring Boot", "Hibernate", "Maven", "REST APIs", "Git", "JUnit", "SQL"},
	"Testing":                   {"Manual Testing", "Automation Testing", "Selenium", "JUnit", "TestNG", "Bugzilla", "LoadRunner"},
	"DevOps Engineer":           {"Docker", "Kubernetes", "Jenkins", "Ansible", "Terraform", "AWS", "Git", "CI/CD", "Linux"},
	"Python Developer":          {"Python", "Flask", "Django", "Pandas", "NumPy", "REST APIs", "Git", "SQL", "FastAPI"},
	"Web Designing":             {"HTML", "CSS", "JavaScript", "Bootstrap", "Figma", "Adobe XD", "UX/UI", "Photoshop"},
	"HR":                        {"MS Excel", "HRIS", "ATS", "Workday", "Zoho Recruit", "Payroll Software", "Google Workspace"},
	"Hadoop":                    {"Hadoop", "MapReduce", "Hive", "Pig", "Sqoop", "HDFS", "Spark", "Oozie"},
	"Blockchain":                {"Solidity", "Ethereum", "Web3.js", "Hyperledger", "Smart Contracts", "Truffle", "Metamask"},
	"ETL Developer":             {"Informatica", "Talend", "SSIS", "SQL", "Python", "Data Warehousing", "DataStage"},
	"Operations Manager":        {"MS Excel", "SAP ERP", "CRM Tools", "Tableau", "Project Management Software"},
	"Data Science":              {"Python", "R", "Scikit-learn", "Pandas", "NumPy", "Matplotlib", "SQL", "Jupyter", "Machine Learning", "Deep Learning"},
	"Sales":                     {"Salesforce", "CRM", "MS Excel", "Google Sheets", "Data Analysis", "HubSpot"},
	"Mechanical Engineer":       {"AutoCAD", "SolidWorks", "CATIA", "Ansys", "MATLAB", "GD&T", "Creo"},
	"Arts":                      {"Adobe Photoshop", "Illustrator", "InDesign", "CorelDRAW", "Blender", "Premiere Pro"},
	"Database":                  {"SQL", "MySQL", "PostgreSQL", "MongoDB", "Oracle DB", "PL/SQL", "DBMS"},
	"Electrical Engineering":    {"MATLAB", "Simulink", "PCB Design", "PSpice", "Multisim", "AutoCAD Electrical"},
	"Health and fitness":        {"BMI Calculator Tools", "Nutrition Apps", "Fitness Trackers", "Excel for diet planning"},
	"PMO":                       {"MS Project", "JIRA", "Confluence", "Trello", "Gantt Charts", "Excel", "Risk Analysis"},
	"Business Analyst":          {"Excel", "Power BI", "SQL", "Tableau", "JIRA", "BRD", "Wireframing Tools"},
	"DotNet Developer":          {"C#", "ASP.NET", ".NET Core", "MVC", "SQL Server", "LINQ", "Visual Studio"},
	"Automation Testing":        {"Selenium", "TestNG", "JUnit", "Jenkins", "Appium", "Cucumber", "Postman"},
	"Network Security Engineer": {"Wireshark", "Kali Linux", "Firewalls", "IDS/IPS", "Cisco ASA", "Nmap", "VPN", "OpenSSL"},
	"SAP Developer":             {"SAP ABAP", "SAP Fiori", "SAP HANA", "BAPI", "SAP UI5", "ALV Reports"},
	"Civil Engineer":            {"AutoCAD", "STAAD Pro", "Revit", "MS Project", "ETABS", "Primavera"},
	"Advocate":                  {"Manupatra", "SCC Online", "MS Word", "Legal Drafting", "Case Management Software"},
}

// Default returns the built-in taxonomy. The table is static and known
// valid, so construction cannot fail.
func Default() *Taxonomy {
	t, err := New(defaultRoles)
	if err != nil {
		panic("taxonomy: invalid built-in role table: " + err.Error())
	}
	return t
}
